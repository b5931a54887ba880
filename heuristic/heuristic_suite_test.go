package heuristic_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestHeuristic(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Heuristic Suite")
}
