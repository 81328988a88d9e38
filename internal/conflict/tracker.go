// Package conflict detects resources that shadow each other across DBPF files.
//
// When several packages are loaded together, a later package replaces any
// resource whose TGI an earlier package already provided. The Tracker
// records which source last provided each TGI and reports, per pair of
// sources, the TGIs the newer one overrides.
package conflict

import (
	"fmt"
	"strings"

	"github.com/arloliu/dbpf/errs"
	"github.com/arloliu/dbpf/tgi"
)

// ownerlessGroup is the group id of resources local to their own package;
// they never shadow anything.
const ownerlessGroup = 0xFFFFFFFF

// sharedTypes are the types whose overrides change game behavior:
// BCON, BHAV, CTSS, GLOB, GZPS, OBJD, OBJf, SLOT, STR#, TPRP, TRCN, TTAB, TTAs, VERS.
var sharedTypes = map[tgi.TypeCode]struct{}{
	tgi.TypeSimanticsBehaviourConstants:   {},
	tgi.TypeSimanticsBehaviourFunction:    {},
	tgi.TypeCatalogDescription:            {},
	tgi.TypeGlobalData:                    {},
	tgi.TypePropertySet:                   {},
	tgi.TypeObjectData:                    {},
	tgi.TypeObjectFunctions:               {},
	tgi.TypeObjectSlot:                    {},
	tgi.TypeTextList:                      {},
	tgi.TypeEdithSimanticsBehaviourLabels: {},
	tgi.TypeBehaviourConstantsLabels:      {},
	tgi.TypePieMenuFunctions:              {},
	tgi.TypePieMenuStrings:                {},
	tgi.TypeVersionInformation:            {},
}

// Filter selects the TGIs a Tracker considers.
type Filter func(key tgi.TGI) bool

// DefaultFilter accepts resources of the shared behavior types outside the
// package-local group.
func DefaultFilter(key tgi.TGI) bool {
	if key.Group == ownerlessGroup {
		return false
	}
	_, ok := sharedTypes[key.Type]

	return ok
}

// AllFilter accepts every TGI.
func AllFilter(tgi.TGI) bool { return true }

// Resource is one TGI provided by a source, optionally with a content fingerprint.
type Resource struct {
	TGI tgi.TGI
	// Hash is the payload fingerprint; only compared when Hashed is set.
	Hash   uint64
	Hashed bool
}

// Conflict lists the TGIs New overrides in Original.
type Conflict struct {
	Original string
	New      string
	TGIs     []tgi.TGI
}

func (c Conflict) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s --> %s\n", c.Original, c.New)
	for _, key := range c.TGIs {
		b.WriteString(key.String())
		b.WriteByte('\n')
	}

	return b.String()
}

type owner struct {
	source string
	res    Resource
}

// Tracker records the owning source of every TGI seen so far.
// Sources must be tracked in load order. A Tracker is not safe for concurrent use.
type Tracker struct {
	filter    Filter
	owners    map[tgi.TGI]owner
	sources   map[string]struct{}
	conflicts []Conflict
}

// NewTracker creates a tracker. A nil filter means DefaultFilter.
func NewTracker(filter Filter) *Tracker {
	if filter == nil {
		filter = DefaultFilter
	}

	return &Tracker{
		filter:  filter,
		owners:  make(map[tgi.TGI]owner),
		sources: make(map[string]struct{}),
	}
}

// Track registers the resources of source and returns the conflicts it
// introduces, one per earlier source it overrides, ordered by the first
// overridden TGI. The newer source becomes the owner of every TGI it provides.
//
// When both sides of a collision carry a fingerprint and the fingerprints
// match, the resource is an identical copy and is not reported.
//
// Returns:
//   - error: ErrInvalidSource for an empty name, ErrSourceAlreadyTracked when
//     source was tracked before
func (t *Tracker) Track(source string, resources []Resource) ([]Conflict, error) {
	if source == "" {
		return nil, errs.ErrInvalidSource
	}
	if _, seen := t.sources[source]; seen {
		return nil, fmt.Errorf("%w: %s", errs.ErrSourceAlreadyTracked, source)
	}
	t.sources[source] = struct{}{}

	var found []Conflict
	byOriginal := make(map[string]int)
	for _, res := range resources {
		if !t.filter(res.TGI) {
			continue
		}

		prev, exists := t.owners[res.TGI]
		t.owners[res.TGI] = owner{source: source, res: res}
		if !exists || prev.source == source || identical(prev.res, res) {
			continue
		}

		i, ok := byOriginal[prev.source]
		if !ok {
			i = len(found)
			byOriginal[prev.source] = i
			found = append(found, Conflict{Original: prev.source, New: source})
		}
		found[i].TGIs = append(found[i].TGIs, res.TGI)
	}

	t.conflicts = append(t.conflicts, found...)

	return found, nil
}

func identical(a, b Resource) bool {
	return a.Hashed && b.Hashed && a.Hash == b.Hash
}

// Owner returns the source that last provided key.
func (t *Tracker) Owner(key tgi.TGI) (string, bool) {
	o, ok := t.owners[key]
	return o.source, ok
}

// Conflicts returns every conflict reported so far, in tracking order.
func (t *Tracker) Conflicts() []Conflict {
	return t.conflicts
}

// Count returns the number of distinct tracked TGIs.
func (t *Tracker) Count() int {
	return len(t.owners)
}

// Reset clears all tracked sources and conflicts.
func (t *Tracker) Reset() {
	clear(t.owners)
	clear(t.sources)
	t.conflicts = t.conflicts[:0]
}
