package repositories

import (
	"github.com/rios0rios0/autocommit/internal/domain/entities"
)

// PatchListRepository loads the changed-file manifest produced by the vendor
// patch drop. Implementations must collect every validation problem of a
// load (malformed records, conflicting duplicates) into the returned error
// instead of stopping at the first one.
type PatchListRepository interface {
	Load(path string) (*entities.PatchList, error)
}
