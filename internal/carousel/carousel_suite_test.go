package carousel_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestCarousel(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Carousel Suite")
}
