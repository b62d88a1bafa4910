package oracle

import (
	"fmt"

	"github.com/calvinalkan/smalltext/pkg/smalltext"
	"github.com/calvinalkan/smalltext/pkg/smalltext/oracle/model"
)

// Constructor builds one (reference, subject) pair. A pair is constructed
// exactly once per test case and never outlives it.
type Constructor interface {
	Construct(mode smalltext.Mode) (*model.Text, *smalltext.String)
	String() string
}

// EmptyConstructor builds an empty pair.
type EmptyConstructor struct{}

func (EmptyConstructor) Construct(mode smalltext.Mode) (*model.Text, *smalltext.String) {
	return model.New(), smalltext.New(mode)
}

func (EmptyConstructor) String() string { return "Empty" }

// OwnedConstructor builds the pair from an owned text value.
type OwnedConstructor struct {
	Text string
}

func (c OwnedConstructor) Construct(mode smalltext.Mode) (*model.Text, *smalltext.String) {
	return model.FromString(c.Text), smalltext.FromString(mode, c.Text)
}

func (c OwnedConstructor) String() string { return fmt.Sprintf("FromText(%q)", c.Text) }

// BorrowedConstructor builds the pair from a borrowed byte view of the
// text. The subject must copy; the view is discarded after construction.
type BorrowedConstructor struct {
	Text string
}

func (c BorrowedConstructor) Construct(mode smalltext.Mode) (*model.Text, *smalltext.String) {
	return model.FromString(c.Text), smalltext.FromBytes(mode, []byte(c.Text))
}

func (c BorrowedConstructor) String() string { return fmt.Sprintf("FromBorrowed(%q)", c.Text) }
