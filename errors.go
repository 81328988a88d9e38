package dbpf

import (
	"fmt"

	"github.com/arloliu/dbpf/tgi"
)

// EntryError is a failure confined to one entry. The rest of the index stays usable.
type EntryError struct {
	TGI tgi.TGI
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s: %v", e.TGI, e.Err)
}

func (e *EntryError) Unwrap() error {
	return e.Err
}
