package repository

import (
	"context"
	"errors"
	"time"

	categoryModel "ewm_backend/internals/features/events/categories/model"
	commentModel "ewm_backend/internals/features/events/comments/model"
	compilationModel "ewm_backend/internals/features/events/compilations/model"
	eventModel "ewm_backend/internals/features/events/events/model"
	requestModel "ewm_backend/internals/features/events/requests/model"
	userModel "ewm_backend/internals/features/users/user/model"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("duplicate record")
)

// Page is an offset/limit window over an ordered result.
type Page struct {
	Offset int
	Limit  int
}

// EventFilter holds the optional predicates of an event search. A nil slice or
// pointer leaves the predicate out; a non-nil empty slice matches nothing.
type EventFilter struct {
	Initiators    []int64
	States        []eventModel.EventState
	Categories    []int64
	Text          string
	Paid          *bool
	OnlyAvailable bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
}

type CommentFilter struct {
	Events     []int64
	Authors    []int64
	RangeStart *time.Time
	RangeEnd   *time.Time
}

type UserStore interface {
	CreateUser(ctx context.Context, u *userModel.UserModel) error
	FindUser(ctx context.Context, id int64) (*userModel.UserModel, error)
	UserExists(ctx context.Context, id int64) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	ListUsers(ctx context.Context, ids []int64, page Page) ([]userModel.UserModel, error)
	DeleteUser(ctx context.Context, id int64) error
}

type CategoryStore interface {
	CreateCategory(ctx context.Context, c *categoryModel.CategoryModel) error
	SaveCategory(ctx context.Context, c *categoryModel.CategoryModel) error
	FindCategory(ctx context.Context, id int64) (*categoryModel.CategoryModel, error)
	// CategoryNameTaken ignores case and the category with id exceptID.
	CategoryNameTaken(ctx context.Context, name string, exceptID int64) (bool, error)
	DeleteCategory(ctx context.Context, id int64) error
	ListCategories(ctx context.Context, page Page) ([]categoryModel.CategoryModel, error)
}

// EventStore returns events with Category and Initiator loaded.
type EventStore interface {
	CreateEvent(ctx context.Context, e *eventModel.EventModel) error
	SaveEvent(ctx context.Context, e *eventModel.EventModel) error
	FindEvent(ctx context.Context, id int64) (*eventModel.EventModel, error)
	FindEventByInitiator(ctx context.Context, id, initiatorID int64) (*eventModel.EventModel, error)
	FindPublishedEvent(ctx context.Context, id int64) (*eventModel.EventModel, error)
	EventExists(ctx context.Context, id int64) (bool, error)
	CategoryInUse(ctx context.Context, categoryID int64) (bool, error)
	ListEventsByInitiator(ctx context.Context, initiatorID int64, page Page) ([]eventModel.EventModel, error)
	// SearchEvents orders by event date, then id.
	SearchEvents(ctx context.Context, f EventFilter, page Page) ([]eventModel.EventModel, error)
	FindEventsByIDs(ctx context.Context, ids []int64) ([]eventModel.EventModel, error)
}

type RequestStore interface {
	CreateRequest(ctx context.Context, r *requestModel.RequestModel) error
	SaveRequests(ctx context.Context, rs []requestModel.RequestModel) error
	RequestExists(ctx context.Context, requesterID, eventID int64) (bool, error)
	HasRequestWithStatus(ctx context.Context, requesterID, eventID int64, status requestModel.RequestStatus) (bool, error)
	CountRequests(ctx context.Context, eventID int64, status requestModel.RequestStatus) (int64, error)
	// CountConfirmedByEvents omits events without confirmed requests.
	CountConfirmedByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
	FindRequestByRequester(ctx context.Context, id, requesterID int64) (*requestModel.RequestModel, error)
	ListRequestsByRequester(ctx context.Context, requesterID int64) ([]requestModel.RequestModel, error)
	ListRequestsByEvent(ctx context.Context, eventID int64) ([]requestModel.RequestModel, error)
	// FindPendingRequests loads the PENDING requests of eventID among ids, ordered by id.
	FindPendingRequests(ctx context.Context, ids []int64, eventID int64) ([]requestModel.RequestModel, error)
}

type CompilationStore interface {
	CreateCompilation(ctx context.Context, c *compilationModel.CompilationModel) error
	SaveCompilation(ctx context.Context, c *compilationModel.CompilationModel) error
	FindCompilation(ctx context.Context, id int64) (*compilationModel.CompilationModel, error)
	DeleteCompilation(ctx context.Context, id int64) error
	ListCompilations(ctx context.Context, pinned *bool, page Page) ([]compilationModel.CompilationModel, error)
}

// CommentStore returns comments with Author and Event (plus its Category and
// Initiator) loaded.
type CommentStore interface {
	CreateComment(ctx context.Context, c *commentModel.CommentModel) error
	SaveComment(ctx context.Context, c *commentModel.CommentModel) error
	FindComment(ctx context.Context, id int64) (*commentModel.CommentModel, error)
	FindCommentByAuthor(ctx context.Context, id, authorID int64) (*commentModel.CommentModel, error)
	FindCommentByEvent(ctx context.Context, id, eventID int64) (*commentModel.CommentModel, error)
	CommentExistsByAuthor(ctx context.Context, authorID, eventID int64) (bool, error)
	DeleteComment(ctx context.Context, id int64) error
	ListCommentsByAuthor(ctx context.Context, authorID int64, page Page) ([]commentModel.CommentModel, error)
	ListCommentsByEvent(ctx context.Context, eventID int64) ([]commentModel.CommentModel, error)
	// SearchComments orders by creation time, then id.
	SearchComments(ctx context.Context, f CommentFilter, page Page) ([]commentModel.CommentModel, error)
	CountCommentsByEvents(ctx context.Context, eventIDs []int64) (map[int64]int64, error)
}

// Store is the persistence boundary of the service. InTx runs fn against a
// transactional view; an error from fn rolls every write back.
type Store interface {
	UserStore
	CategoryStore
	EventStore
	RequestStore
	CompilationStore
	CommentStore

	InTx(ctx context.Context, fn func(tx Store) error) error
}
