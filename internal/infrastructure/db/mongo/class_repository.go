package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

const classCollection = "classes"

type ClassRepository struct {
	coll *mongo.Collection
}

func NewClassRepository(db *mongo.Database) *ClassRepository {
	return &ClassRepository{coll: db.Collection(classCollection)}
}

type classDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Image           string             `bson:"image"`
	InstructorName  string             `bson:"instructor_name"`
	InstructorEmail string             `bson:"instructor_email"`
	AvailableSeats  int                `bson:"available_seats"`
	Price           float64            `bson:"price"`
	Enrolled        int                `bson:"enrolled"`
	Status          string             `bson:"status"`
	Feedback        string             `bson:"feedback,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d classDoc) toDomain() *domain.Class {
	return &domain.Class{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Image:           d.Image,
		InstructorName:  d.InstructorName,
		InstructorEmail: d.InstructorEmail,
		AvailableSeats:  d.AvailableSeats,
		Price:           d.Price,
		Enrolled:        d.Enrolled,
		Status:          domain.ClassStatus(d.Status),
		Feedback:        d.Feedback,
		CreatedAt:       d.CreatedAt.UTC(),
	}
}

func fromClass(c *domain.Class) classDoc {
	return classDoc{
		Name:            c.Name,
		Image:           c.Image,
		InstructorName:  c.InstructorName,
		InstructorEmail: c.InstructorEmail,
		AvailableSeats:  c.AvailableSeats,
		Price:           c.Price,
		Enrolled:        c.Enrolled,
		Status:          string(c.Status),
		Feedback:        c.Feedback,
		CreatedAt:       c.CreatedAt,
	}
}

func (r *ClassRepository) Insert(ctx context.Context, class *domain.Class) (*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.InsertOne(ctx, fromClass(class))
	if err != nil {
		return nil, fmt.Errorf("insert class: %w", err)
	}

	created := *class
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *ClassRepository) FindByID(ctx context.Context, id string) (*domain.Class, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrClassNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc classDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClassNotFound
		}
		return nil, fmt.Errorf("find class: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *ClassRepository) ListByStatus(ctx context.Context, status domain.ClassStatus) ([]*domain.Class, error) {
	return r.list(ctx, bson.M{"status": string(status)})
}

func (r *ClassRepository) ListByInstructor(ctx context.Context, email string) ([]*domain.Class, error) {
	return r.list(ctx, bson.M{"instructor_email": email})
}

func (r *ClassRepository) ListAll(ctx context.Context) ([]*domain.Class, error) {
	return r.list(ctx, bson.M{})
}

func (r *ClassRepository) list(ctx context.Context, filter bson.M) ([]*domain.Class, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	defer cur.Close(ctx)

	var classes []*domain.Class
	for cur.Next(ctx) {
		var doc classDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode class: %w", err)
		}
		classes = append(classes, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list classes: %w", err)
	}
	return classes, nil
}

func (r *ClassRepository) UpdateStatus(ctx context.Context, id string, status domain.ClassStatus) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClassNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("update class status: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClassNotFound
	}
	return nil
}

func (r *ClassRepository) SetFeedback(ctx context.Context, id string, feedback string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrClassNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"feedback": feedback}})
	if err != nil {
		return fmt.Errorf("set class feedback: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrClassNotFound
	}
	return nil
}

// EnsureIndexes creates lookup indexes for the class listing queries.
func (r *ClassRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "instructor_email", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
