package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/m04kA/SMC-CourtSchedule/internal/domain"
)

// CollectionName коллекция расписаний по умолчанию
const CollectionName = "schedules"

type scheduleDocument struct {
	ID    primitive.ObjectID `bson:"_id"`
	Dates []dateDocument     `bson:"dates"`
}

type dateDocument struct {
	Date  time.Time      `bson:"date"`
	Slots []slotDocument `bson:"slots"`
}

type slotDocument struct {
	CourtNumber  int    `bson:"courtNumber"`
	StartTime    int    `bson:"start_time"`
	CustomerName string `bson:"customer_name"`
	ContactInfo  string `bson:"contact_info,omitempty"`
	Amount       int64  `bson:"amount,omitempty"`
}

// MongoRepository репозиторий документов расписаний.
// Расписание это один документ с вложенным массивом dates, в каждой дате свои слоты.
type MongoRepository struct {
	collection *mongo.Collection
}

// NewMongoRepository создает новый экземпляр репозитория на MongoDB
func NewMongoRepository(collection *mongo.Collection) *MongoRepository {
	return &MongoRepository{collection: collection}
}

// GetByID загружает документ расписания по ObjectID
func (r *MongoRepository) GetByID(ctx context.Context, id string) (*domain.Schedule, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - %q: %v", ErrInvalidID, id, err)
	}

	var doc scheduleDocument
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrScheduleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - find one: %v", ErrExecQuery, err)
	}

	return doc.toDomain(), nil
}

// AddSlot добавляет слот в запись даты, создавая запись при отсутствии.
// date должна совпадать с сохраненным значением или быть уже нормализована.
func (r *MongoRepository) AddSlot(ctx context.Context, scheduleID string, date time.Time, slot domain.BookedSlot) error {
	oid, err := primitive.ObjectIDFromHex(scheduleID)
	if err != nil {
		return fmt.Errorf("%w: AddSlot - %q: %v", ErrInvalidID, scheduleID, err)
	}

	date = date.UTC()
	doc := slotFromDomain(slot)

	// 1. Существующая запись даты
	pushed, err := r.pushToDate(ctx, oid, date, doc)
	if err != nil {
		return err
	}
	if pushed {
		return nil
	}

	// 2. Новая запись даты, только если записи на эту дату еще нет
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "dates.date": bson.M{"$ne": date}},
		bson.M{"$push": bson.M{"dates": dateDocument{Date: date, Slots: []slotDocument{doc}}}},
	)
	if err != nil {
		return fmt.Errorf("%w: AddSlot - push date: %v", ErrExecQuery, err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	// 3. Запись создана параллельным запросом, либо расписания нет
	pushed, err = r.pushToDate(ctx, oid, date, doc)
	if err != nil {
		return err
	}
	if !pushed {
		return ErrScheduleNotFound
	}

	return nil
}

func (r *MongoRepository) pushToDate(ctx context.Context, oid primitive.ObjectID, date time.Time, doc slotDocument) (bool, error) {
	res, err := r.collection.UpdateOne(ctx,
		bson.M{"_id": oid, "dates.date": date},
		bson.M{"$push": bson.M{"dates.$.slots": doc}},
	)
	if err != nil {
		return false, fmt.Errorf("%w: AddSlot - push slot: %v", ErrExecQuery, err)
	}
	return res.MatchedCount > 0, nil
}

func (d scheduleDocument) toDomain() *domain.Schedule {
	schedule := &domain.Schedule{
		ID:    d.ID.Hex(),
		Dates: make([]domain.ScheduleDate, 0, len(d.Dates)),
	}
	for _, date := range d.Dates {
		slots := make([]domain.BookedSlot, 0, len(date.Slots))
		for _, s := range date.Slots {
			slots = append(slots, domain.BookedSlot{
				CourtNumber:  s.CourtNumber,
				StartTime:    s.StartTime,
				CustomerName: s.CustomerName,
				ContactInfo:  s.ContactInfo,
				Amount:       s.Amount,
			})
		}
		schedule.Dates = append(schedule.Dates, domain.ScheduleDate{
			Date:  date.Date.UTC(),
			Slots: slots,
		})
	}
	return schedule
}

func slotFromDomain(s domain.BookedSlot) slotDocument {
	return slotDocument{
		CourtNumber:  s.CourtNumber,
		StartTime:    s.StartTime,
		CustomerName: s.CustomerName,
		ContactInfo:  s.ContactInfo,
		Amount:       s.Amount,
	}
}
