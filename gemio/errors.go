package gemio

import "errors"

var (
	// ErrEmptyModel is returned when a model file defines no metabolites
	// or no reactions.
	ErrEmptyModel = errors.New("gemio: model contains no metabolites or reactions")

	// ErrDuplicateMetabolite is returned when two metabolites share an ID.
	ErrDuplicateMetabolite = errors.New("gemio: duplicate metabolite ID")

	// ErrDuplicateReaction is returned when two reactions share an ID.
	ErrDuplicateReaction = errors.New("gemio: duplicate reaction ID")

	// ErrUnknownMetabolite is returned when a reaction references a
	// metabolite ID the model does not declare.
	ErrUnknownMetabolite = errors.New("gemio: reaction references unknown metabolite")

	// ErrBadCoefficient is returned when a stoichiometric coefficient
	// cannot be parsed as a number.
	ErrBadCoefficient = errors.New("gemio: stoichiometric coefficient is not a number")

	// ErrReversibilityCount is returned by LoadMatrixCSV when the supplied
	// reversibility flags do not match the reaction count.
	ErrReversibilityCount = errors.New("gemio: reversibility count must equal reaction count")

	// ErrBadFormat is returned for file suffixes this package cannot parse.
	ErrBadFormat = errors.New("gemio: unsupported file format")

	// ErrNoColumns is returned when an expression table has no value
	// columns next to the gene ID column.
	ErrNoColumns = errors.New("gemio: expression table has no value columns")

	// ErrAmbiguousColumn is returned when an expression table has several
	// value columns and no column name was given to pick one.
	ErrAmbiguousColumn = errors.New("gemio: expression column must be named when several value columns exist")

	// ErrUnknownColumn is returned when the named expression column does
	// not exist in the table.
	ErrUnknownColumn = errors.New("gemio: expression column not found")

	// ErrDuplicateGene is returned when an expression table lists a gene
	// ID twice.
	ErrDuplicateGene = errors.New("gemio: duplicate gene ID")

	// ErrBadValue is returned when a non-empty expression cell cannot be
	// parsed as a number.
	ErrBadValue = errors.New("gemio: expression value is not a number")
)
