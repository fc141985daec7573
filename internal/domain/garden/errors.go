package garden

import "errors"

// ErrUnknownSpecies rejects an add-plant for a species id absent from
// the catalog at the time of the add.
var ErrUnknownSpecies = errors.New("unknown plant species")
