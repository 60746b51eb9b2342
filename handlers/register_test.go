package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	. "github.com/smartystreets/goconvey/convey"

	"github.com/acmeplatform/embedded-finance.api/config"
)

func TestUnitRegister(t *testing.T) {

	Convey("Register routes", t, func() {
		router := mux.NewRouter()
		Register(router, config.DefaultConfig())

		So(router.GetRoute("get-healthcheck"), ShouldNotBeNil)
		So(router.GetRoute("onboard"), ShouldNotBeNil)
		So(router.GetRoute("send-money"), ShouldNotBeNil)
	})

	Convey("Healthcheck", t, func() {
		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/healthcheck", nil)
		healthCheck(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
	})

	Convey("Non-POST methods are rejected by the router", t, func() {
		router := mux.NewRouter()
		Register(router, config.DefaultConfig())

		w := httptest.NewRecorder()
		req := httptest.NewRequest("GET", "/api/onboard", nil)
		router.ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
	})
}
