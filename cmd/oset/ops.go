package main

import (
	"fmt"

	"github.com/rdeusser/orderedset/orderedset"
)

type stringSet = orderedset.OrderedSet[string]

// operation is either a fold applied left to right over every input, or a
// predicate over exactly two inputs.
type operation struct {
	minArgs   int
	maxArgs   int // 0 means unbounded
	fold      func(acc, next *stringSet)
	predicate func(a, b *stringSet) bool
}

var operations = map[string]operation{
	"dedupe":          {minArgs: 1, fold: (*stringSet).FormUnion},
	"union":           {minArgs: 2, fold: (*stringSet).FormUnion},
	"intersection":    {minArgs: 2, fold: (*stringSet).FormIntersection},
	"subtract":        {minArgs: 2, fold: (*stringSet).Subtract},
	"symdiff":         {minArgs: 2, fold: (*stringSet).FormSymmetricDifference},
	"subset":          {minArgs: 2, maxArgs: 2, predicate: (*stringSet).IsSubset},
	"strict-subset":   {minArgs: 2, maxArgs: 2, predicate: (*stringSet).IsStrictSubset},
	"superset":        {minArgs: 2, maxArgs: 2, predicate: (*stringSet).IsSuperset},
	"strict-superset": {minArgs: 2, maxArgs: 2, predicate: (*stringSet).IsStrictSuperset},
	"disjoint":        {minArgs: 2, maxArgs: 2, predicate: (*stringSet).IsDisjoint},
	"equal":           {minArgs: 2, maxArgs: 2, predicate: (*stringSet).Equal},
}

func (op operation) checkArgs(paths []string) error {
	switch {
	case len(paths) < op.minArgs:
		return fmt.Errorf("want at least %d files, got %d", op.minArgs, len(paths))
	case op.maxArgs > 0 && len(paths) > op.maxArgs:
		return fmt.Errorf("want at most %d files, got %d", op.maxArgs, len(paths))
	}
	return nil
}
