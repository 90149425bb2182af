package model

import (
	"encoding/json"
	"fmt"
	"time"
)

// Entity is the kind of work a processing task describes.
type Entity string

const (
	EntityBlock         Entity = "block"
	EntityBlockMetadata Entity = "block_metadata"
	EntityEra           Entity = "era"
	EntityRound         Entity = "round"
)

// TaskStatus is the lifecycle state of a processing task.
type TaskStatus string

const (
	TaskNotProcessed TaskStatus = "not_processed"
	// TaskProcessing is part of the stored enum but never written by the pipeline.
	TaskProcessing TaskStatus = "processing"
	TaskProcessed  TaskStatus = "processed"
	TaskCancelled  TaskStatus = "cancelled"
)

// ProcessingTask is one row of the processing_tasks ledger.
type ProcessingTask struct {
	RowID           int64
	Entity          Entity
	EntityID        int64
	NetworkID       int
	Status          TaskStatus
	CollectUID      string
	Attempts        int
	StartTimestamp  time.Time
	FinishTimestamp *time.Time
	Data            json.RawMessage
}

// RoundTaskData is the payload of round tasks.
type RoundTaskData struct {
	PayoutBlockID uint64 `json:"payout_block_id"`
}

// RoundData decodes the task payload as RoundTaskData.
func (t ProcessingTask) RoundData() (RoundTaskData, error) {
	var data RoundTaskData
	if len(t.Data) == 0 {
		return data, fmt.Errorf("task %s/%d has no data", t.Entity, t.EntityID)
	}
	if err := json.Unmarshal(t.Data, &data); err != nil {
		return data, fmt.Errorf("decode task %s/%d data: %w", t.Entity, t.EntityID, err)
	}
	return data, nil
}
