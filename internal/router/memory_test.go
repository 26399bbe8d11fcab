package router

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/sbilibin2017/job-listings/internal/models"
)

// memCollection is an in-memory stand-in for a store collection.
type memCollection[T any] struct {
	mu    sync.Mutex
	seq   int
	order []string
	docs  map[string]memDoc[T]
}

type memDoc[T any] struct {
	doc       T
	createdAt time.Time
	updatedAt time.Time
}

func newMemCollection[T any]() *memCollection[T] {
	return &memCollection[T]{docs: make(map[string]memDoc[T])}
}

func (c *memCollection[T]) list() ([]string, []memDoc[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	docs := make([]memDoc[T], 0, len(c.order))
	for _, id := range c.order {
		docs = append(docs, c.docs[id])
	}
	return append([]string(nil), c.order...), docs
}

func (c *memCollection[T]) get(id string, strict bool) (memDoc[T], error) {
	if !models.IsValidID(id) {
		if strict {
			return memDoc[T]{}, models.ErrInvalidID
		}
		return memDoc[T]{}, models.ErrNotFound
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.docs[strings.ToLower(id)]
	if !ok {
		return memDoc[T]{}, models.ErrNotFound
	}
	return d, nil
}

func (c *memCollection[T]) insert(doc T) (string, memDoc[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	id := fmt.Sprintf("%024x", c.seq)
	now := time.Now().UTC()
	d := memDoc[T]{doc: doc, createdAt: now, updatedAt: now}
	c.docs[id] = d
	c.order = append(c.order, id)
	return id, d
}

func (c *memCollection[T]) replace(id string, doc T) (memDoc[T], error) {
	if !models.IsValidID(id) {
		return memDoc[T]{}, models.ErrInvalidID
	}
	id = strings.ToLower(id)
	c.mu.Lock()
	defer c.mu.Unlock()
	d, ok := c.docs[id]
	if !ok {
		return memDoc[T]{}, models.ErrNotFound
	}
	d.doc = doc
	d.updatedAt = time.Now().UTC()
	c.docs[id] = d
	return d, nil
}

func (c *memCollection[T]) delete(id string) error {
	if !models.IsValidID(id) {
		return models.ErrInvalidID
	}
	id = strings.ToLower(id)
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.docs[id]; !ok {
		return models.ErrNotFound
	}
	delete(c.docs, id)
	for i, o := range c.order {
		if o == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return nil
}

type memJobRepository struct {
	c *memCollection[models.Job]
}

func newMemJobRepository() *memJobRepository {
	return &memJobRepository{c: newMemCollection[models.Job]()}
}

func jobRec(id string, d memDoc[models.Job]) *models.JobRecord {
	return &models.JobRecord{ID: id, Job: d.doc, CreatedAt: d.createdAt, UpdatedAt: d.updatedAt}
}

func (r *memJobRepository) List(ctx context.Context) ([]models.JobRecord, error) {
	ids, docs := r.c.list()
	out := make([]models.JobRecord, 0, len(ids))
	for i, id := range ids {
		out = append(out, *jobRec(id, docs[i]))
	}
	return out, nil
}

func (r *memJobRepository) GetByID(ctx context.Context, id string) (*models.JobRecord, error) {
	d, err := r.c.get(id, false)
	if err != nil {
		return nil, err
	}
	return jobRec(strings.ToLower(id), d), nil
}

func (r *memJobRepository) GetForUpdate(ctx context.Context, id string) (*models.JobRecord, error) {
	d, err := r.c.get(id, true)
	if err != nil {
		return nil, err
	}
	return jobRec(strings.ToLower(id), d), nil
}

func (r *memJobRepository) Create(ctx context.Context, job models.Job) (*models.JobRecord, error) {
	id, d := r.c.insert(job)
	return jobRec(id, d), nil
}

func (r *memJobRepository) Replace(ctx context.Context, id string, job models.Job) (*models.JobRecord, error) {
	d, err := r.c.replace(id, job)
	if err != nil {
		return nil, err
	}
	return jobRec(strings.ToLower(id), d), nil
}

func (r *memJobRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(id)
}

type memUserRepository struct {
	c *memCollection[models.User]
}

func newMemUserRepository() *memUserRepository {
	return &memUserRepository{c: newMemCollection[models.User]()}
}

func userRec(id string, d memDoc[models.User]) *models.UserRecord {
	return &models.UserRecord{ID: id, User: d.doc, CreatedAt: d.createdAt, UpdatedAt: d.updatedAt}
}

func (r *memUserRepository) taken(username, exceptID string) bool {
	ids, docs := r.c.list()
	for i, id := range ids {
		if id != exceptID && docs[i].doc.Username == username {
			return true
		}
	}
	return false
}

func (r *memUserRepository) List(ctx context.Context) ([]models.UserRecord, error) {
	ids, docs := r.c.list()
	out := make([]models.UserRecord, 0, len(ids))
	for i, id := range ids {
		out = append(out, *userRec(id, docs[i]))
	}
	return out, nil
}

func (r *memUserRepository) GetByID(ctx context.Context, id string) (*models.UserRecord, error) {
	d, err := r.c.get(id, false)
	if err != nil {
		return nil, err
	}
	return userRec(strings.ToLower(id), d), nil
}

func (r *memUserRepository) GetForUpdate(ctx context.Context, id string) (*models.UserRecord, error) {
	d, err := r.c.get(id, true)
	if err != nil {
		return nil, err
	}
	return userRec(strings.ToLower(id), d), nil
}

func (r *memUserRepository) Create(ctx context.Context, user models.User) (*models.UserRecord, error) {
	if r.taken(user.Username, "") {
		return nil, models.ErrUsernameTaken
	}
	id, d := r.c.insert(user)
	return userRec(id, d), nil
}

func (r *memUserRepository) Replace(ctx context.Context, id string, user models.User) (*models.UserRecord, error) {
	if r.taken(user.Username, strings.ToLower(id)) {
		return nil, models.ErrUsernameTaken
	}
	d, err := r.c.replace(id, user)
	if err != nil {
		return nil, err
	}
	return userRec(strings.ToLower(id), d), nil
}

func (r *memUserRepository) Delete(ctx context.Context, id string) error {
	return r.c.delete(id)
}
