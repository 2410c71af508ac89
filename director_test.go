package leipae

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestDirectorScenario(t *testing.T) {
	Convey("Given the stock show on a fake clock", t, func() {
		d, clock := newTestDemo(t, showScript())
		var events []SceneEvent
		sink := EventSinkFunc(func(e SceneEvent) { events = append(events, e) })

		Convey("The first frame leaves Init for MovingForward", func() {
			d.Update()
			d.FlushEvents(sink)

			So(d.Scene(), ShouldEqual, SceneMovingForward)
			So(d.SceneIndex(), ShouldEqual, 1)
			So(d.Target(), ShouldResemble, Vec3{3, 0.8, -100})
			So(events, ShouldHaveLength, 1)
			So(events[0].From, ShouldEqual, SceneInit)

			Convey("Halfway through, the camera is halfway down the road", func() {
				clock.AdvanceSeconds(7.5)
				d.Update()

				So(d.Time(), ShouldEqual, 7.5)
				So(d.Camera().Z, ShouldAlmostEqual, -10)
			})

			Convey("When the budget runs out, ForwardToTop starts from zero", func() {
				clock.AdvanceSeconds(15)
				d.Update()
				d.FlushEvents(sink)

				So(d.Scene(), ShouldEqual, SceneForwardToTop)
				So(d.SceneIndex(), ShouldEqual, 2)
				So(d.Time(), ShouldEqual, 0)
				So(d.DayTime(), ShouldEqual, 15)
				So(events, ShouldHaveLength, 2)
				So(events[1].Cause, ShouldEqual, CauseExpired)
			})

			Convey("When the user pauses for a minute and resumes", func() {
				clock.AdvanceSeconds(4)
				d.Update()
				d.Pause()
				clock.AdvanceSeconds(60)
				d.Resume()
				clock.AdvanceSeconds(1)
				d.Update()

				Convey("No time is lost or gained", func() {
					So(d.Time(), ShouldEqual, 5)
					So(d.DayTime(), ShouldEqual, 5)
					So(d.Scene(), ShouldEqual, SceneMovingForward)
				})
			})

			Convey("When the user skips at four seconds", func() {
				clock.AdvanceSeconds(4)
				d.Update()
				d.SkipToNext()
				d.FlushEvents(sink)

				So(d.Scene(), ShouldEqual, SceneForwardToTop)
				So(d.Time(), ShouldEqual, 0)
				So(d.DayTime(), ShouldEqual, 15)
				So(events[len(events)-1].Cause, ShouldEqual, CauseSkipped)
			})
		})

		Convey("Played to the end", func() {
			d.Update()
			for i := 0; i < 200 && !d.ShouldExit(); i++ {
				clock.AdvanceSeconds(1)
				d.Update()
			}
			d.FlushEvents(sink)

			Convey("The show stops on Ending after one pass", func() {
				So(d.ShouldExit(), ShouldBeTrue)
				So(d.Scene(), ShouldEqual, SceneEnding)
				So(d.DayTime(), ShouldEqual, 100)
				So(events, ShouldHaveLength, len(d.Script().Order)-1)
			})

			Convey("Further commands change nothing", func() {
				cam, day := d.Camera(), d.DayTime()
				d.SkipToNext()
				d.Reset()
				clock.AdvanceSeconds(5)
				d.Update()

				So(d.Camera(), ShouldResemble, cam)
				So(d.DayTime(), ShouldEqual, day)
				So(d.Scene(), ShouldEqual, SceneEnding)
			})
		})
	})
}
