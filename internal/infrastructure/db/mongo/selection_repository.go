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

const selectionCollection = "selected"

type SelectionRepository struct {
	coll *mongo.Collection
}

func NewSelectionRepository(db *mongo.Database) *SelectionRepository {
	return &SelectionRepository{coll: db.Collection(selectionCollection)}
}

type selectionDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	ClassID        string             `bson:"class_id"`
	ClassName      string             `bson:"class_name"`
	Image          string             `bson:"image"`
	Price          float64            `bson:"price"`
	InstructorName string             `bson:"instructor_name"`
	Email          string             `bson:"email"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d selectionDoc) toDomain() *domain.Selection {
	return &domain.Selection{
		ID:             d.ID.Hex(),
		ClassID:        d.ClassID,
		ClassName:      d.ClassName,
		Image:          d.Image,
		Price:          d.Price,
		InstructorName: d.InstructorName,
		Email:          d.Email,
		CreatedAt:      d.CreatedAt.UTC(),
	}
}

func (r *SelectionRepository) Insert(ctx context.Context, selection *domain.Selection) (*domain.Selection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := selectionDoc{
		ClassID:        selection.ClassID,
		ClassName:      selection.ClassName,
		Image:          selection.Image,
		Price:          selection.Price,
		InstructorName: selection.InstructorName,
		Email:          selection.Email,
		CreatedAt:      selection.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert selection: %w", err)
	}

	created := *selection
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		created.ID = oid.Hex()
	}
	return &created, nil
}

func (r *SelectionRepository) FindByID(ctx context.Context, id string) (*domain.Selection, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrSelectionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc selectionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrSelectionNotFound
		}
		return nil, fmt.Errorf("find selection: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *SelectionRepository) ListByEmail(ctx context.Context, email string) ([]*domain.Selection, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{"email": email}, options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	defer cur.Close(ctx)

	var selections []*domain.Selection
	for cur.Next(ctx) {
		var doc selectionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode selection: %w", err)
		}
		selections = append(selections, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list selections: %w", err)
	}
	return selections, nil
}

func (r *SelectionRepository) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrSelectionNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete selection: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrSelectionNotFound
	}
	return nil
}

// EnsureIndexes creates the owner-email index the cart listing uses.
func (r *SelectionRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "email", Value: 1}},
	})
	return err
}
