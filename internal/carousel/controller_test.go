package carousel_test

import (
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/coreforge/internal/carousel"
	"github.com/san-kum/coreforge/internal/clock"
)

func activeDots(c *carousel.Controller) []int {
	var out []int
	for _, d := range c.Dots() {
		if d.Active {
			out = append(out, d.Page)
		}
	}
	return out
}

var _ = Describe("Controller", func() {
	var (
		sched *clock.Scheduler
		c     *carousel.Controller
	)

	BeforeEach(func() {
		sched = clock.NewScheduler()
		c = carousel.New(9, carousel.DefaultOptions(), sched)
	})

	It("starts at the first slide with one running timer", func() {
		Expect(c.Current()).To(Equal(0))
		Expect(c.Offset()).To(Equal(0.0))
		Expect(c.Running()).To(BeTrue())
		Expect(sched.Active()).To(Equal(1))
	})

	Describe("GoTo", func() {
		DescribeTable("clamps into [0, T-V]",
			func(target, want int) {
				c.GoTo(target)
				Expect(c.Current()).To(Equal(want))
				Expect(c.Offset()).To(Equal(float64(want) * carousel.DefaultSlideWidth))
			},
			Entry("below zero", -5, 0),
			Entry("zero", 0, 0),
			Entry("inside", 4, 4),
			Entry("last offset", 6, 6),
			Entry("past the end", 100, 6),
		)

		It("notifies the change callback", func() {
			var seen []int
			c.OnChange(func(i int) { seen = append(seen, i) })
			c.GoTo(2)
			c.GoTo(50)
			Expect(seen).To(Equal([]int{2, 6}))
		})
	})

	Describe("Next and Prev", func() {
		It("step by one and saturate at both ends", func() {
			c.Prev()
			Expect(c.Current()).To(Equal(0))
			for i := 0; i < 10; i++ {
				c.Next()
			}
			Expect(c.Current()).To(Equal(6))
			c.Prev()
			Expect(c.Current()).To(Equal(5))
		})
	})

	Describe("AutoAdvance", func() {
		It("wraps from the last offset to zero", func() {
			c.GoTo(6)
			c.AutoAdvance()
			Expect(c.Current()).To(Equal(0))
		})

		It("moves forward by one otherwise", func() {
			c.GoTo(3)
			c.AutoAdvance()
			Expect(c.Current()).To(Equal(4))
		})

		It("fires every interval from the scheduler", func() {
			sched.Advance(3499 * time.Millisecond)
			Expect(c.Current()).To(Equal(0))
			sched.Advance(time.Millisecond)
			Expect(c.Current()).To(Equal(1))
			for i := 0; i < 6; i++ {
				sched.Advance(carousel.DefaultInterval)
			}
			Expect(c.Current()).To(Equal(0))
		})
	})

	Describe("dots", func() {
		It("builds ceil(T/V) dots targeting page starts", func() {
			dots := c.Dots()
			Expect(dots).To(HaveLen(3))
			Expect(c.PageCount()).To(Equal(3))
			for i, d := range dots {
				Expect(d.Target).To(Equal(i * 3))
			}
		})

		It("marks exactly floor(current/V) active", func() {
			c.GoTo(4)
			Expect(c.ActivePage()).To(Equal(1))
			Expect(activeDots(c)).To(Equal([]int{1}))
		})

		It("jumps to the page start on activation", func() {
			c.Activate(2)
			Expect(c.Current()).To(Equal(6))
			Expect(activeDots(c)).To(Equal([]int{2}))
			c.Activate(7)
			Expect(c.Current()).To(Equal(6))
		})

		It("rounds the page count up for a partial last page", func() {
			c10 := carousel.New(10, carousel.DefaultOptions(), nil)
			Expect(c10.PageCount()).To(Equal(4))
			c10.Activate(3)
			Expect(c10.Current()).To(Equal(7))
			Expect(activeDots(c10)).To(Equal([]int{2}))
		})
	})

	Describe("pause and resume", func() {
		It("keeps exactly one timer after double pause and one resume", func() {
			c.Pause()
			c.Pause()
			Expect(sched.Active()).To(Equal(0))
			c.Resume()
			Expect(sched.Active()).To(Equal(1))

			sched.Advance(carousel.DefaultInterval)
			Expect(c.Current()).To(Equal(1))
		})

		It("never stacks timers on repeated resume", func() {
			for i := 0; i < 5; i++ {
				c.Resume()
			}
			Expect(sched.Active()).To(Equal(1))
			sched.Advance(carousel.DefaultInterval)
			Expect(c.Current()).To(Equal(1))
		})

		It("does not advance while paused", func() {
			c.Pause()
			sched.Advance(10 * carousel.DefaultInterval)
			Expect(c.Current()).To(Equal(0))
			Expect(c.Running()).To(BeFalse())
		})

		It("pauses on hover enter and resumes on leave", func() {
			c.Hover(true)
			c.Hover(true)
			Expect(c.Running()).To(BeFalse())
			c.Hover(false)
			c.Hover(false)
			Expect(c.Running()).To(BeTrue())
			Expect(sched.Active()).To(Equal(1))
		})
	})

	Describe("short tracks", func() {
		It("pins to zero when there are fewer slides than visible", func() {
			short := carousel.New(2, carousel.DefaultOptions(), nil)
			short.GoTo(5)
			Expect(short.Current()).To(Equal(0))
			short.AutoAdvance()
			Expect(short.Current()).To(Equal(0))
			Expect(short.PageCount()).To(Equal(1))
			Expect(short.Running()).To(BeFalse())
		})
	})
})
