package scheduler

import (
	"context"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestScheduler(t *testing.T) {
	Convey("Given a scheduler", t, func() {
		s := New()

		Convey("It should be built around a cron runner", func() {
			So(s, ShouldNotBeNil)
			So(s.cron, ShouldNotBeNil)
		})

		Convey("When adding a job with a valid 5-field expression", func() {
			err := s.AddJob("0 3 * * *", func(context.Context) {})

			Convey("It should register without error", func() {
				So(err, ShouldBeNil)
			})
		})

		Convey("When adding a job with an invalid expression", func() {
			err := s.AddJob("every day at three", func(context.Context) {})

			Convey("It should return an error", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When adding a job with a seconds field", func() {
			err := s.AddJob("* * * * * *", func(context.Context) {})

			Convey("It should be rejected, only standard syntax is accepted", func() {
				So(err, ShouldNotBeNil)
			})
		})

		Convey("When starting and stopping", func() {
			So(s.AddJob("* * * * *", func(context.Context) {}), ShouldBeNil)

			Convey("The lifecycle should be clean", func() {
				So(func() { s.Start() }, ShouldNotPanic)
				So(func() { s.Stop() }, ShouldNotPanic)
			})
		})
	})
}
