package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/taskdeck/todo-api/internal/core/domain"
)

const collectionTodos = "todos"

// TodoRepository persists todos. The owner filter is part of every query, so
// a todo owned by another user is indistinguishable from a missing one.
type TodoRepository struct {
	col *mongo.Collection
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{col: db.Collection(collectionTodos)}
}

type mongoTodo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Priority    int                `bson:"priority"`
	Complete    bool               `bson:"complete"`
	OwnerID     string             `bson:"owner_id"`
}

func (mt mongoTodo) toDomain() *domain.Todo {
	return &domain.Todo{
		ID:          mt.ID.Hex(),
		Title:       mt.Title,
		Description: mt.Description,
		Priority:    mt.Priority,
		Complete:    mt.Complete,
		OwnerID:     mt.OwnerID,
	}
}

func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) (*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTodo{
		Title:       todo.Title,
		Description: todo.Description,
		Priority:    todo.Priority,
		Complete:    todo.Complete,
		OwnerID:     todo.OwnerID,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert todo: %w", err)
	}

	created := *todo
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *TodoRepository) FindByID(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	filter, err := ownedFilter(id, ownerID)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mt mongoTodo
	if err := r.col.FindOne(ctx, filter).Decode(&mt); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return mt.toDomain(), nil
}

func (r *TodoRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Todo, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"owner_id": ownerID})
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cursor.Close(ctx)

	todos := []*domain.Todo{}
	for cursor.Next(ctx) {
		var mt mongoTodo
		if err := cursor.Decode(&mt); err != nil {
			return nil, fmt.Errorf("decode todo: %w", err)
		}
		todos = append(todos, mt.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (r *TodoRepository) Update(ctx context.Context, todo *domain.Todo) error {
	filter, err := ownedFilter(todo.ID, todo.OwnerID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	update := bson.M{"$set": bson.M{
		"title":       todo.Title,
		"description": todo.Description,
		"priority":    todo.Priority,
		"complete":    todo.Complete,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("update todo: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

func (r *TodoRepository) Delete(ctx context.Context, id, ownerID string) error {
	filter, err := ownedFilter(id, ownerID)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, filter)
	if err != nil {
		return fmt.Errorf("delete todo: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrTodoNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by every todo query.
func (r *TodoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

// ownedFilter builds the id+owner filter shared by find, update, and delete.
// A malformed id cannot match anything, so it maps to not-found.
func ownedFilter(id, ownerID string) (bson.M, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrTodoNotFound
	}
	return bson.M{"_id": oid, "owner_id": ownerID}, nil
}
