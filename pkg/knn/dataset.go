package knn

import "github.com/qychen/tictacgo/pkg/common"

type DatasetKind int

const (
	// MoveLabeled records carry the recommended move index for the state.
	MoveLabeled DatasetKind = iota
	// OutcomeLabeled records carry the eventual winner of the game the
	// state was taken from. The label is only compared for identity.
	OutcomeLabeled
)

func (k DatasetKind) String() string {
	if k == OutcomeLabeled {
		return "outcome-labeled"
	}
	return "move-labeled"
}

type Record struct {
	State common.StateVector
	Label int
}

// Dataset is immutable after construction by the loader.
type Dataset struct {
	Kind    DatasetKind
	Records []Record
}

func (ds *Dataset) Empty() bool {
	return len(ds.Records) == 0
}
