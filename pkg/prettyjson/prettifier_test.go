package prettyjson_test

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"net/url"

	"github.com/mozilla-releng/buildapi-client/pkg/prettyjson"
)

func TestPrettifier(t *testing.T) {
	spec.Run(t, "Format()", func(t *testing.T, when spec.G, it spec.S) {
		gt := gomega.NewGomegaWithT(t)

		when("given a map", func() {
			var response string
			var err error

			it.Before(func() {
				response, err = prettyjson.Format(map[string]interface{}{"zzz": false, "aaa": 111})
				gt.Expect(err).NotTo(gomega.HaveOccurred())
			})

			it("prettifies the contents with sorted keys", func() {
				gt.Expect(response).To(gomega.Equal("{\n  \"aaa\": 111,\n  \"zzz\": false\n}"))
			})
		}, spec.Nested())

		when("given form values", func() {
			var response string
			var err error

			it.Before(func() {
				response, err = prettyjson.Format(url.Values{"request_id": []string{"999"}})
				gt.Expect(err).NotTo(gomega.HaveOccurred())
			})

			it("renders each key with its values", func() {
				gt.Expect(response).To(gomega.ContainSubstring(`"request_id"`))
				gt.Expect(response).To(gomega.ContainSubstring(`"999"`))
			})
		}, spec.Nested())

		when("given an object which cannot be encoded", func() {
			var err error

			it.Before(func() {
				_, err = prettyjson.Format(map[string]interface{}{"loop": make(chan int)})
			})

			it("returns an error", func() {
				gt.Expect(err.Error()).To(gomega.ContainSubstring("could not encode payload"))
			})
		}, spec.Nested())

		when("given an object which is not a JSON object", func() {
			var err error

			it.Before(func() {
				_, err = prettyjson.Format([]string{"not", "an", "object"})
			})

			it("returns an error", func() {
				gt.Expect(err.Error()).To(gomega.ContainSubstring("could not parse payload"))
			})
		}, spec.Nested())
	}, spec.Report(report.Terminal{}))
}
