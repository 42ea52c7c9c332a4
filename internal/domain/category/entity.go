package category

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var ErrEmptyName = errors.New("category name cannot be empty")

type Category struct {
	id          uuid.UUID
	name        string
	description *string
	isActive    bool
	order       int
}

func NewCategory(name string, description *string, order int) (*Category, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, ErrEmptyName
	}
	return &Category{
		id:          uuid.New(),
		name:        n,
		description: description,
		isActive:    true,
		order:       order,
	}, nil
}

func (c *Category) ID() uuid.UUID        { return c.id }
func (c *Category) Name() string         { return c.name }
func (c *Category) Description() *string { return c.description }
func (c *Category) IsActive() bool       { return c.isActive }
func (c *Category) Order() int           { return c.order }
