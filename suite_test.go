package whatwgurl_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestWhatwgurl(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "whatwgurl Suite")
}
