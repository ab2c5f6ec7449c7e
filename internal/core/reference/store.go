package reference

import "context"

// Repository defines the data access contract for reference records. Every
// method is scoped to one [Kind].
type Repository interface {

	/*
		List retrieves a filtered and paginated list of entries.

		Parameters:
		  - context: context.Context
		  - kind: Kind (selects the table)
		  - filter: Filter (Search parameters)
		  - limit, offset: int (Pagination bounds)

		Returns:
		  - []*Entry: Paginated matching results
		  - int: Total matching count for pagination metadata
		  - error: Database execution errors
	*/
	List(context context.Context, kind Kind, filter Filter, limit, offset int) ([]*Entry, int, error)

	// FindByID retrieves a live entry by primary key.
	FindByID(context context.Context, kind Kind, id int) (*Entry, error)

	// Located returns every live entry that has both coordinates.
	Located(context context.Context, kind Kind) ([]*Entry, error)

	Create(context context.Context, entry *Entry) error
	Update(context context.Context, entry *Entry) error

	// Delete flags an entry as logically deleted.
	Delete(context context.Context, kind Kind, id int) error
}
