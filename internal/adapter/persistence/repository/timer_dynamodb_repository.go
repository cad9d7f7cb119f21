package repository

import (
	"context"
	"time"

	"inhouse/internal/domain/entities"
	"inhouse/internal/usecase/interfaces"
)

const defaultTimersTableName = "timers"

type timerItem struct {
	ID        string `dynamodbav:"id"`
	UserID    string `dynamodbav:"user_id"`
	Title     string `dynamodbav:"title,omitempty"`
	StartTime string `dynamodbav:"start_time,omitempty"`
	Duration  int64  `dynamodbav:"duration"`
	Active    bool   `dynamodbav:"active"`
	auditItem
}

// TimerDynamoRepository persists Timer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type TimerDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.ITimerRepository = (*TimerDynamoRepository)(nil)

func NewTimerDynamoRepository(ddb DynamoAPI) *TimerDynamoRepository {
	return &TimerDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("TIMERS_TABLE", defaultTimersTableName),
	}
}

func (r *TimerDynamoRepository) Create(ctx context.Context, t entities.Timer) (entities.Timer, error) {
	ok, err := putNew(ctx, r.ddb, r.tableName, "id", toTimerItem(t))
	if err != nil {
		return entities.Timer{}, err
	}
	if !ok {
		return entities.Timer{}, interfaces.ErrAlreadyExists
	}
	return t, nil
}

func (r *TimerDynamoRepository) Update(ctx context.Context, t entities.Timer) (entities.Timer, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, "id", toTimerItem(t))
	if err != nil || !ok {
		return entities.Timer{}, err
	}
	return t, nil
}

func (r *TimerDynamoRepository) GetByID(ctx context.Context, id string) (entities.Timer, error) {
	it, found, err := getItem[timerItem](ctx, r.ddb, r.tableName, stringKey("id", id))
	if err != nil || !found {
		return entities.Timer{}, err
	}
	return fromTimerItem(it), nil
}

func toTimerItem(t entities.Timer) timerItem {
	it := timerItem{
		ID:        t.ID,
		UserID:    t.UserID,
		Title:     t.Title,
		Duration:  t.Duration,
		Active:    t.Active,
		auditItem: toAuditItem(t.Audit),
	}
	if t.StartTime != nil {
		it.StartTime = formatTime(*t.StartTime)
	}
	return it
}

func fromTimerItem(it timerItem) entities.Timer {
	t := entities.Timer{
		ID:       it.ID,
		UserID:   it.UserID,
		Title:    it.Title,
		Duration: it.Duration,
		Active:   it.Active,
		Audit:    fromAuditItem(it.auditItem),
	}
	if it.StartTime != "" {
		start, err := time.Parse(time.RFC3339Nano, it.StartTime)
		if err == nil {
			t.StartTime = &start
		}
	}
	return t
}
