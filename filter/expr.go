package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	helpers    map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		if size > 0 {
			c.cache = newLRUCache[CompiledFilter](size)
		}
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.helperFuncs, funcs)
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		helperFuncs: createHelperFunctions(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	helperFuncs map[string]any
	cache       *lruCache[CompiledFilter]
}

// Compile compiles an expression into an executable filter
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, newCompilationError(expression, "empty expression", nil)
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	// The zero item fixes the variable types so typos and type errors fail here
	program, err := expr.Compile(expression,
		expr.Env(createRuntimeEnvironment(Item{}, c.helperFuncs)),
		expr.AsBool(),
	)
	if err != nil {
		return nil, newCompilationError(expression, "failed to compile expression", err)
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		helpers:    c.helperFuncs,
	}

	if c.cache != nil {
		c.cache.Put(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Size()
	}
	return 0
}

// Evaluate reports whether item matches. Items that fail at runtime do not match.
func (f *exprFilter) Evaluate(item Item) bool {
	ok, err := f.Check(item)
	return err == nil && ok
}

func (f *exprFilter) Check(item Item) (bool, error) {
	result, err := expr.Run(f.program, createRuntimeEnvironment(item, f.helpers))
	if err != nil {
		return false, &EvaluationError{
			Expression: f.expression,
			Title:      item.Title,
			Reason:     "expression failed at runtime",
			Err:        err,
		}
	}

	// AsBool guarantees the type
	return result.(bool), nil
}

func (f *exprFilter) Expression() string {
	return f.expression
}

// createHelperFunctions creates the item independent helpers
func createHelperFunctions() map[string]any {
	return map[string]any{
		"daysSince": func(t time.Time) int {
			return int(time.Since(t).Hours() / 24)
		},
		"daysAgo": func(days int) time.Time {
			return time.Now().AddDate(0, 0, -days)
		},
		"monthsAgo": func(months int) time.Time {
			return time.Now().AddDate(0, -months, 0)
		},
		"yearsAgo": func(years int) time.Time {
			return time.Now().AddDate(-years, 0, 0)
		},
		"parseDate": func(dateStr string) time.Time {
			t, _ := time.Parse(time.DateOnly, dateStr)
			return t
		},
	}
}

// createRuntimeEnvironment exposes item fields in snake_case next to the helpers
func createRuntimeEnvironment(item Item, helpers map[string]any) map[string]any {
	env := make(map[string]any, len(helpers)+20)
	maps.Copy(env, helpers)

	env["kind"] = string(item.Kind)
	env["id"] = item.ID
	env["title"] = item.Title
	env["original_title"] = item.OriginalTitle
	env["overview"] = item.Overview
	env["language"] = item.Language
	env["released"] = item.Released
	env["year"] = item.Year
	env["adult"] = item.Adult
	env["popularity"] = item.Popularity
	env["vote_average"] = item.VoteAverage
	env["vote_count"] = item.VoteCount
	env["runtime"] = item.Runtime
	env["genre_ids"] = item.GenreIDs
	env["genres"] = item.Genres

	env["hasGenre"] = createHasGenreFunc(item.Genres)
	env["hasGenreID"] = func(id int) bool {
		return slices.Contains(item.GenreIDs, id)
	}
	env["similarTitle"] = createSimilarTitleFunc(item.Title, item.OriginalTitle)

	return env
}

func createHasGenreFunc(genres []string) func(string) bool {
	lower := make([]string, len(genres))
	for i, g := range genres {
		lower[i] = strings.ToLower(g)
	}
	return func(name string) bool {
		return slices.Contains(lower, strings.ToLower(name))
	}
}

// createSimilarTitleFunc matches either title within maxDistance edits, ignoring case
func createSimilarTitleFunc(titles ...string) func(string, int) bool {
	return func(query string, maxDistance int) bool {
		query = strings.ToLower(query)
		for _, t := range titles {
			if t != "" && levenshtein.ComputeDistance(strings.ToLower(t), query) <= maxDistance {
				return true
			}
		}
		return false
	}
}

// Compile compiles expression with an uncached default compiler
func Compile(expression string) (CompiledFilter, error) {
	return NewExprCompiler().Compile(expression)
}
