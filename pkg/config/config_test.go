package config_test

import (
	"testing"

	"github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"

	"github.com/mozilla-releng/buildapi-client/pkg/config"
)

func TestConfigPkg(t *testing.T) {
	spec.Run(t, "pkg/config", func(t *testing.T, when spec.G, it spec.S) {
		gt := gomega.NewGomegaWithT(t)

		when("working with run modes", func() {
			it("defaults to a dry run", func() {
				var request config.TriggerRequest
				gt.Expect(request.Mode).To(gomega.Equal(config.DryRun))
			})
		}, spec.Nested())

		when("normalizing retrigger counts", func() {
			it("treats an unset count as the server default of 1", func() {
				gt.Expect(config.RetriggerRequest{}.CountOrDefault()).To(gomega.Equal(1))
				gt.Expect(config.RetriggerBuildRequest{}.CountOrDefault()).To(gomega.Equal(1))
			})

			it("keeps an explicit count", func() {
				gt.Expect(config.RetriggerRequest{Count: 10}.CountOrDefault()).To(gomega.Equal(10))
				gt.Expect(config.RetriggerBuildRequest{Count: 4}.CountOrDefault()).To(gomega.Equal(4))
			})
		}, spec.Nested())

		when("decoding a response body", func() {
			var response *config.Response

			it.Before(func() {
				response = &config.Response{
					StatusCode: 200,
					Status:     "200 OK",
					Body:       []byte(`{"request_id": 1234567}`),
				}
			})

			it("parses JSON into the given shape", func() {
				var content struct {
					RequestID int64 `json:"request_id"`
				}
				gt.Expect(response.JSON(&content)).To(gomega.Succeed())
				gt.Expect(content.RequestID).To(gomega.Equal(int64(1234567)))
			})

			it("returns an error for a body which is not JSON", func() {
				var content map[string]interface{}
				response.Body = []byte("<html>502 Bad Gateway</html>")
				gt.Expect(response.JSON(&content)).NotTo(gomega.Succeed())
			})
		}, spec.Nested())
	}, spec.Report(report.Terminal{}))
}
