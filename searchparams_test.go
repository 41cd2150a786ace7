package whatwgurl_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	. "github.com/region23/whatwgurl"
)

var _ = Describe("SearchParams", func() {
	Describe("construction from a string", func() {
		It("parses ordered pairs and strips a leading '?'", func() {
			sp := NewSearchParamsFromString("?a=1&b=2")
			Expect(sp.Keys()).Should(Equal([]string{"a", "b"}))
			Expect(sp.Values()).Should(Equal([]string{"1", "2"}))
		})

		It("drops pieces without '='", func() {
			sp := NewSearchParamsFromString("a=1&noequals&b=2")
			Expect(sp.Keys()).Should(Equal([]string{"a", "b"}))
		})

		It("drops empty pieces from doubled separators", func() {
			sp := NewSearchParamsFromString("a=1&&b=2")
			Expect(sp.Keys()).Should(Equal([]string{"a", "b"}))
		})
	})

	Describe("has / get invariant", func() {
		It("has(n) holds exactly when get(n) is present", func() {
			sp := NewSearchParamsFromString("a=1")
			Expect(sp.Has("a")).Should(BeTrue())
			_, ok := sp.Get("a")
			Expect(ok).Should(BeTrue())

			Expect(sp.Has("missing")).Should(BeFalse())
			_, ok = sp.Get("missing")
			Expect(ok).Should(BeFalse())
		})
	})

	Describe("getAll", func() {
		It("counts every pair with the given name", func() {
			sp := NewSearchParamsFromString("a=1&a=2&b=3")
			Expect(sp.GetAll("a")).Should(Equal([]string{"1", "2"}))
		})
	})

	Describe("set", func() {
		It("collapses existing matches and appends the new value at the end", func() {
			sp := NewSearchParamsFromString("a=1&b=2&a=3")
			sp.Set("a", "9")
			Expect(sp.GetAll("a")).Should(Equal([]string{"9"}))
			Expect(sp.String()).Should(Equal("b=2&a=9"))
		})
	})

	Describe("delete", func() {
		It("removes every pair with the name and has(n) becomes false", func() {
			sp := NewSearchParamsFromString("a=1&b=2")
			sp.Delete("a")
			Expect(sp.Has("a")).Should(BeFalse())
			Expect(sp.Keys()).Should(Equal([]string{"b"}))
		})
	})

	Describe("sort", func() {
		It("orders by Unicode code point", func() {
			sp := NewSearchParamsFromString("b=2&a=1")
			sp.Sort()
			Expect(sp.String()).Should(Equal("a=1&b=2"))
		})

		It("preserves relative order among equal keys", func() {
			sp := NewSearchParamsFromString("b=2&a=x&a=y")
			sp.Sort()
			Expect(sp.GetAll("a")).Should(Equal([]string{"x", "y"}))
		})
	})

	Describe("round trip", func() {
		It("toString(parse(toString(p))) == toString(p)", func() {
			sp := NewSearchParamsFromString("a=1&b=2")
			first := sp.String()
			again := NewSearchParamsFromString(first)
			Expect(again.String()).Should(Equal(first))
		})
	})

	Describe("forEach", func() {
		It("invokes the callback with value before name", func() {
			sp := NewSearchParamsFromString("a=1&b=2")
			var got [][2]string
			sp.ForEach(func(value, name string) {
				got = append(got, [2]string{value, name})
			})
			Expect(got).Should(Equal([][2]string{{"1", "a"}, {"2", "b"}}))
		})
	})
})
