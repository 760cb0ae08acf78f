package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/summercamp/enrollment-api/internal/core/domain"
)

const instructorCollection = "instructors"

type InstructorRepository struct {
	coll *mongo.Collection
}

func NewInstructorRepository(db *mongo.Database) *InstructorRepository {
	return &InstructorRepository{coll: db.Collection(instructorCollection)}
}

type instructorDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Name            string             `bson:"name"`
	Email           string             `bson:"email"`
	Image           string             `bson:"image"`
	NumberOfClasses int                `bson:"number_of_classes"`
	ClassNames      []string           `bson:"class_names,omitempty"`
	CreatedAt       time.Time          `bson:"created_at"`
}

func (d instructorDoc) toDomain() *domain.Instructor {
	return &domain.Instructor{
		ID:              d.ID.Hex(),
		Name:            d.Name,
		Email:           d.Email,
		Image:           d.Image,
		NumberOfClasses: d.NumberOfClasses,
		ClassNames:      d.ClassNames,
		CreatedAt:       d.CreatedAt.UTC(),
	}
}

func (r *InstructorRepository) Insert(ctx context.Context, instructor *domain.Instructor) (*domain.Instructor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := instructorDoc{
		Name:            instructor.Name,
		Email:           instructor.Email,
		Image:           instructor.Image,
		NumberOfClasses: instructor.NumberOfClasses,
		ClassNames:      instructor.ClassNames,
		CreatedAt:       instructor.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert instructor: %w", err)
	}

	created := *instructor
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *InstructorRepository) List(ctx context.Context) ([]*domain.Instructor, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	defer cur.Close(ctx)

	var instructors []*domain.Instructor
	for cur.Next(ctx) {
		var doc instructorDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode instructor: %w", err)
		}
		instructors = append(instructors, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list instructors: %w", err)
	}
	return instructors, nil
}
