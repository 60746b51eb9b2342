package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/acmeplatform/embedded-finance.api/models"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitGetSession(t *testing.T) {

	Convey("No session email", t, func() {
		req := httptest.NewRequest("POST", "/test", nil)
		session, err := GetSession(req)
		So(session, ShouldBeNil)
		So(err.Error(), ShouldEqual, "no session email supplied")
	})

	Convey("Unsupported country", t, func() {
		req := httptest.NewRequest("POST", "/test", nil)
		req.Header.Set("Demo-Session-Email", "demo@example.com")
		req.Header.Set("Demo-Session-Country", "GB")
		session, err := GetSession(req)
		So(session, ShouldBeNil)
		So(err.Error(), ShouldEqual, "unsupported session country [GB]")
	})

	Convey("No account id", t, func() {
		req := httptest.NewRequest("POST", "/test", nil)
		req.Header.Set("Demo-Session-Email", "demo@example.com")
		req.Header.Set("Demo-Session-Country", "US")
		session, err := GetSession(req)
		So(session, ShouldBeNil)
		So(err.Error(), ShouldEqual, "no session account supplied")
	})

	Convey("Unsupported platform", t, func() {
		req := httptest.NewRequest("POST", "/test", nil)
		req.Header.Set("Demo-Session-Email", "demo@example.com")
		req.Header.Set("Demo-Session-Country", "US")
		req.Header.Set("Demo-Session-Account", "acct_123")
		req.Header.Set("Demo-Session-Platform", "apac")
		session, err := GetSession(req)
		So(session, ShouldBeNil)
		So(err.Error(), ShouldEqual, "unsupported session platform [apac]")
	})

	Convey("Unsupported financial product", t, func() {
		req := httptest.NewRequest("POST", "/test", nil)
		req.Header.Set("Demo-Session-Email", "demo@example.com")
		req.Header.Set("Demo-Session-Country", "US")
		req.Header.Set("Demo-Session-Account", "acct_123")
		req.Header.Set("Demo-Session-Platform", "us")
		req.Header.Set("Demo-Session-Product", "payroll")
		session, err := GetSession(req)
		So(session, ShouldBeNil)
		So(err.Error(), ShouldEqual, "unsupported financial product [payroll]")
	})

	Convey("Successful session, product optional", t, func() {
		req := httptest.NewRequest("POST", "/test", nil)
		req.Header.Set("Demo-Session-Email", "demo@example.com")
		req.Header.Set("Demo-Session-Country", "DE")
		req.Header.Set("Demo-Session-Account", "acct_123")
		req.Header.Set("Demo-Session-Platform", "eu")
		session, err := GetSession(req)
		So(err, ShouldBeNil)
		So(session, ShouldResemble, &models.Session{
			Email:   "demo@example.com",
			Country: models.DE,
			StripeAccount: models.StripeAccount{
				AccountID: "acct_123",
				Platform:  models.PlatformEU,
			},
		})
	})

	Convey("Successful session with financial product", t, func() {
		req := httptest.NewRequest("POST", "/test", nil)
		req.Header.Set("Demo-Session-Email", "demo@example.com")
		req.Header.Set("Demo-Session-Country", "US")
		req.Header.Set("Demo-Session-Account", "acct_123")
		req.Header.Set("Demo-Session-Platform", "us")
		req.Header.Set("Demo-Session-Product", "embedded-finance")
		session, err := GetSession(req)
		So(err, ShouldBeNil)
		So(session.FinancialProduct, ShouldEqual, models.EmbeddedFinance)
	})
}
