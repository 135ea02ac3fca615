package config

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitDefaultConfig(t *testing.T) {
	Convey("Defaults target the sandbox with sane timings", t, func() {
		cfg := DefaultConfig()
		So(cfg.Environment, ShouldEqual, EnvSandbox)
		So(cfg.Locale, ShouldEqual, "en")
		So(cfg.HTTPTimeout, ShouldEqual, 30*time.Second)
		So(cfg.ActiveWaitingInterval, ShouldEqual, 3*time.Second)
		So(cfg.ActiveWaitingMaxAttempts, ShouldEqual, 100)
	})
}

func TestUnitHost(t *testing.T) {
	Convey("Known environments resolve to their gateway hosts", t, func() {
		cfg := DefaultConfig()
		So(cfg.Host(), ShouldEqual, "homologation-payment.payline.com")

		cfg.Environment = EnvProduction
		So(cfg.Host(), ShouldEqual, "payment.payline.com")
	})

	Convey("Anything else is treated as a hostname verbatim", t, func() {
		cfg := DefaultConfig()
		cfg.Environment = "gateway.example.com/payline-widget"
		So(cfg.Host(), ShouldEqual, "gateway.example.com/payline-widget")
	})
}

func TestUnitIsSandbox(t *testing.T) {
	Convey("Only production counts as production", t, func() {
		cfg := DefaultConfig()
		So(cfg.IsSandbox(), ShouldBeTrue)

		cfg.Environment = "gateway.example.com"
		So(cfg.IsSandbox(), ShouldBeTrue)

		cfg.Environment = EnvProduction
		So(cfg.IsSandbox(), ShouldBeFalse)
	})
}

func TestUnitGet(t *testing.T) {
	Convey("Get returns the same instance on repeat calls", t, func() {
		first, err := Get()
		So(err, ShouldBeNil)

		second, err := Get()
		So(err, ShouldBeNil)
		So(second, ShouldEqual, first)
	})
}
