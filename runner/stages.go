package runner

import (
	"slices"
	"strings"

	"github.com/kbukum/transduce/errors"
	"github.com/kbukum/transduce/transducer"
)

// Stage kinds.
const (
	KindMap    = "map"
	KindFilter = "filter"
	KindRemove = "remove"
)

var mapFuncs = map[string]transducer.MapFunc[int, int]{
	"inc":    func(x int) int { return x + 1 },
	"dec":    func(x int) int { return x - 1 },
	"double": func(x int) int { return x * 2 },
	"square": func(x int) int { return x * x },
	"negate": func(x int) int { return -x },
}

var predicates = map[string]transducer.Predicate[int]{
	"even":     func(x int) bool { return x%2 == 0 },
	"odd":      func(x int) bool { return x%2 != 0 },
	"positive": func(x int) bool { return x > 0 },
	"negative": func(x int) bool { return x < 0 },
	"zero":     func(x int) bool { return x == 0 },
}

// StageNames lists every stage the catalogue can build, sorted.
func StageNames() []string {
	names := make([]string, 0, len(mapFuncs)+2*len(predicates))
	for name := range mapFuncs {
		names = append(names, KindMap+":"+name)
	}
	for name := range predicates {
		names = append(names, KindFilter+":"+name, KindRemove+":"+name)
	}
	slices.Sort(names)
	return names
}

// ParseStage builds the transducer named by spec ("map:inc", "filter:even").
func ParseStage[R any](spec string) (transducer.Transducer[int, int, R], error) {
	kind, name, ok := strings.Cut(strings.TrimSpace(spec), ":")
	if !ok {
		return nil, errors.UnknownStage(spec)
	}

	switch kind {
	case KindMap:
		if fn, ok := mapFuncs[name]; ok {
			return transducer.Map[int, int, R](fn), nil
		}
	case KindFilter:
		if p, ok := predicates[name]; ok {
			return transducer.Filter[int, R](p), nil
		}
	case KindRemove:
		if p, ok := predicates[name]; ok {
			return transducer.Remove[int, R](p), nil
		}
	}
	return nil, errors.UnknownStage(spec)
}

// ParseStages builds every stage in order and pipes them. The first spec
// sees each element first. No specs yields the identity.
func ParseStages[R any](specs []string) (transducer.Transducer[int, int, R], error) {
	xfs := make([]transducer.Transducer[int, int, R], 0, len(specs))
	for _, spec := range specs {
		xf, err := ParseStage[R](spec)
		if err != nil {
			return nil, err
		}
		xfs = append(xfs, xf)
	}
	return transducer.Pipe(xfs...), nil
}
