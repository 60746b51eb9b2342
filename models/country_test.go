package models

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitCountryConfigMap(t *testing.T) {

	Convey("Every supported country has exactly one config entry", t, func() {
		So(len(CountryConfigMap), ShouldEqual, len(SupportedCountries))
		for _, country := range SupportedCountries {
			config, ok := CountryConfigMap[country]
			So(ok, ShouldBeTrue)
			So(config.Currency, ShouldNotBeEmpty)
			So(config.FakeAddress.City, ShouldNotBeEmpty)
			So(config.FakeAddress.PostalCode, ShouldNotBeEmpty)
		}
	})

	Convey("US settles in usd, EU countries in eur", t, func() {
		So(CountryConfigMap[US].Currency, ShouldEqual, "usd")
		for _, country := range SupportedCountries {
			if country == US {
				continue
			}
			So(CountryConfigMap[country].Currency, ShouldEqual, "eur")
		}
	})

	Convey("IsSupportedCountry", t, func() {
		So(IsSupportedCountry("DE"), ShouldBeTrue)
		So(IsSupportedCountry("GB"), ShouldBeFalse)
		So(IsSupportedCountry(""), ShouldBeFalse)
	})
}
