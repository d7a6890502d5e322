package filter

// Filter defines the basic interface for title filters
type Filter interface {
	// Evaluate checks if an item matches the filter criteria
	Evaluate(item Item) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Check is Evaluate with the runtime error surfaced
	Check(item Item) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	// Compile parses and compiles a filter expression
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// Select returns the values whose projection matches f, in their original order
func Select[T any](f Filter, values []T, project func(T) Item) []T {
	matched := make([]T, 0, len(values))
	for _, v := range values {
		if f.Evaluate(project(v)) {
			matched = append(matched, v)
		}
	}
	return matched
}
