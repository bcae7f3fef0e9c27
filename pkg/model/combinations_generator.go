package model

type combinationGenerator interface {
	// Returns every combination of k elements out of n (as ascending index slices) in lexicographic order
	//
	// Example:
	//
	//	generator := newCombinationGenerator()
	//	generator.Combinations(4, 2) // [[0 1] [0 2] [0 3] [1 2] [1 3] [2 3]]
	Combinations(n, k int) [][]int
}

func newCombinationGenerator() combinationGenerator {
	return &combinationGeneratorImplementation{}
}

type combinationGeneratorImplementation struct{}

func (generator combinationGeneratorImplementation) Combinations(n, k int) [][]int {
	if k < 0 || k > n {
		return [][]int{}
	}

	combinations := make([][]int, 0)
	generator.combinations(n, 0, make([]int, 0, k), k, &combinations)
	return combinations
}

func (generator combinationGeneratorImplementation) combinations(
	n int,
	start int,
	combination []int,
	k int,
	combinations *[][]int) {

	if len(combination) == k {
		combinationCopy := make([]int, len(combination))
		copy(combinationCopy, combination)
		*combinations = append(*combinations, combinationCopy)
		return
	}

	// Stop as soon as there are not enough elements left to complete the combination
	for i := start; i <= n-(k-len(combination)); i++ {
		generator.combinations(n, i+1, append(combination, i), k, combinations)
	}
}
