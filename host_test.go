package whatwgurl_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/region23/whatwgurl"
)

var _ = Describe("host parsing", func() {
	Describe("IPv4 detection in domains", func() {
		It("treats an all-digit final label as an IPv4 address", func() {
			u, err := Parse("http://0x1.1.1.1/")
			Expect(err).NotTo(HaveOccurred())
			Expect(*u.Host).Should(Equal("1.1.1.1"))
		})

		It("drops a trailing dot before IPv4 detection", func() {
			u, err := Parse("http://127.0.0.1./")
			Expect(err).NotTo(HaveOccurred())
			Expect(*u.Host).Should(Equal("127.0.0.1"))
		})
	})

	Describe("IPv6", func() {
		It("compresses an all-zero address to ::", func() {
			u, err := Parse("http://[::]/")
			Expect(err).NotTo(HaveOccurred())
			Expect(*u.Host).Should(Equal("[::]"))
		})

		It("does not compress a single zero piece", func() {
			u, err := Parse("http://[1:0:2:3:4:5:6:7]/")
			Expect(err).NotTo(HaveOccurred())
			Expect(*u.Host).Should(Equal("[1:0:2:3:4:5:6:7]"))
		})

		It("supports an embedded IPv4 tail", func() {
			u, err := Parse("http://[::ffff:192.0.2.1]/")
			Expect(err).NotTo(HaveOccurred())
			Expect(*u.Host).Should(Equal("[::ffff:c000:201]"))
		})

		It("fails on an unterminated bracket", func() {
			_, err := Parse("http://[::1/")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("opaque hosts", func() {
		It("percent-encodes a non-special host under the C0 set", func() {
			u, err := Parse("foo://exa\x01mple/")
			Expect(err).NotTo(HaveOccurred())
			Expect(*u.Host).Should(Equal("exa%01mple"))
		})

		It("fails on a forbidden host code point in a non-special host", func() {
			_, err := Parse("foo://exa mple/")
			Expect(err).To(HaveOccurred())
		})
	})
})
