package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeAncestors(t *testing.T) {
	parents := map[int64]int64{1: 0, 2: 1, 3: 2}

	assert.Equal(t, "1,2,3", ComputeAncestors(parents, 3))
	assert.Equal(t, "1,2", ComputeAncestors(parents, 2))
	assert.Equal(t, "1", ComputeAncestors(parents, 1))
}

func TestComputeAncestorsRoot(t *testing.T) {
	assert.Equal(t, "", ComputeAncestors(map[int64]int64{1: 0}, 0))
}

func TestComputeAncestorsMissingParentRow(t *testing.T) {
	// 父链断裂时在断点截止
	parents := map[int64]int64{3: 2}
	assert.Equal(t, "2,3", ComputeAncestors(parents, 3))
}

func TestComputeAncestorsCycle(t *testing.T) {
	parents := map[int64]int64{1: 2, 2: 1}
	assert.Equal(t, "2,1", ComputeAncestors(parents, 1))
}
