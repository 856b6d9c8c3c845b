package render_test

import (
	"bytes"
	"errors"
	"sort"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/scene3d/internal/geom"
	"github.com/san-kum/scene3d/internal/render"
)

var figCfg = render.FigureConfig{Width: 800, Height: 600}

var _ = Describe("Context", func() {
	var ctx *render.Context

	BeforeEach(func() {
		ctx = render.NewContext("fake-alpha")
	})

	Describe("SetBackend", func() {
		It("round-trips every supported name", func() {
			for _, name := range []string{"fake-alpha", "fake-beta"} {
				Expect(ctx.SetBackend(name)).To(Succeed())
				Expect(ctx.Backend()).To(Equal(name))
			}
		})

		It("rejects unknown names and leaves the state unchanged", func() {
			Expect(ctx.Backend()).To(Equal("fake-alpha"))
			err := ctx.SetBackend("mayavi")
			Expect(err).To(MatchError(render.ErrUnknownBackend))
			Expect(ctx.Backend()).To(Equal("fake-alpha"))
		})

		It("leaves the state unchanged when the engine fails to load", func() {
			Expect(ctx.Backend()).To(Equal("fake-alpha"))
			err := ctx.SetBackend("broken")
			Expect(err).To(MatchError(render.ErrBackendLoad))
			Expect(err).To(MatchError(errBrokenLoad))
			Expect(ctx.Backend()).To(Equal("fake-alpha"))
		})
	})

	Describe("With", func() {
		It("switches for the scope and restores on return", func() {
			err := ctx.With("fake-beta", func() error {
				Expect(ctx.Backend()).To(Equal("fake-beta"))
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.Backend()).To(Equal("fake-alpha"))
		})

		It("restores on a body error and propagates it unchanged", func() {
			boom := errors.New("boom")
			err := ctx.With("fake-beta", func() error { return boom })
			Expect(err).To(MatchError(boom))
			Expect(ctx.Backend()).To(Equal("fake-alpha"))
		})

		It("restores when the body panics", func() {
			Expect(func() {
				ctx.With("fake-beta", func() error { panic("scene explosion") })
			}).To(PanicWith("scene explosion"))
			Expect(ctx.Backend()).To(Equal("fake-alpha"))
		})

		It("never runs the body when the switch fails", func() {
			ran := false
			err := ctx.With("broken", func() error {
				ran = true
				return nil
			})
			Expect(err).To(MatchError(render.ErrBackendLoad))
			Expect(ran).To(BeFalse())
			Expect(ctx.Backend()).To(Equal("fake-alpha"))
		})

		It("surfaces a restoration failure over the body result", func() {
			flakyBinds = 0
			Expect(ctx.SetBackend("flaky")).To(Succeed())

			boom := errors.New("boom")
			err := ctx.With("fake-beta", func() error { return boom })
			Expect(err).To(MatchError(render.ErrBackendLoad))
			Expect(errors.Is(err, boom)).To(BeFalse())
			// Degraded but explicit: the override stays active when
			// the previous engine cannot rebind.
			Expect(ctx.Backend()).To(Equal("fake-beta"))
		})
	})

	Describe("WithTest", func() {
		It("flags test mode for exactly the scope duration", func() {
			Expect(ctx.TestMode()).To(BeFalse())
			err := ctx.WithTest("fake-beta", func() error {
				Expect(ctx.TestMode()).To(BeTrue())
				return nil
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.TestMode()).To(BeFalse())
		})

		It("clears the flag on a failing scope", func() {
			boom := errors.New("boom")
			err := ctx.WithTest("fake-beta", func() error { return boom })
			Expect(err).To(MatchError(boom))
			Expect(ctx.TestMode()).To(BeFalse())
			Expect(ctx.Backend()).To(Equal("fake-alpha"))
		})
	})

	Describe("delegation", func() {
		It("creates a scene usable for view and title updates", func() {
			scene, err := ctx.CreateFigure(figCfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.SetTitle(scene, "t", 0)).To(Succeed())
			Expect(ctx.SetView(scene, render.View{Azimuth: render.Float(45)})).To(Succeed())
		})

		It("forwards unset view fields as unset", func() {
			scene, err := ctx.CreateFigure(figCfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.SetView(scene, render.View{Azimuth: render.Float(45)})).To(Succeed())

			fs := scene.(*fakeScene)
			Expect(fs.lastView.Azimuth).To(HaveValue(Equal(45.0)))
			Expect(fs.lastView.Elevation).To(BeNil())
			Expect(fs.lastView.FocalPoint).To(BeNil())
			Expect(fs.lastView.Distance).To(BeNil())
		})

		It("routes calls through whichever binding is active at call time", func() {
			before, err := ctx.CreateFigure(figCfg)
			Expect(err).NotTo(HaveOccurred())

			Expect(ctx.SetBackend("fake-beta")).To(Succeed())
			after, err := ctx.CreateFigure(figCfg)
			Expect(err).NotTo(HaveOccurred())

			var buf bytes.Buffer
			Expect(ctx.Snapshot(after, &buf)).To(Succeed())
			Expect(buf.String()).To(Equal("fake-beta"))

			// The old scene does not belong to the new binding.
			err = ctx.SetView(before, render.View{Azimuth: render.Float(10)})
			Expect(err).To(MatchError(render.ErrForeignScene))
		})

		It("passes a default title size when none is given", func() {
			scene, err := ctx.CreateFigure(figCfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.SetTitle(scene, "t", 0)).To(Succeed())
			Expect(scene.(*fakeScene).titleSize).To(Equal(render.DefaultTitleSize))
		})

		It("invalidates scenes through CloseAll only when asked", func() {
			scene, err := ctx.CreateFigure(figCfg)
			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.CloseAll()).To(Succeed())
			Expect(ctx.SetTitle(scene, "t", 0)).To(MatchError(render.ErrClosedScene))
		})

		It("projects points through the scene's camera", func() {
			scene, err := ctx.CreateFigure(figCfg)
			Expect(err).NotTo(HaveOccurred())
			proj, err := ctx.Project(scene, []geom.Vec3{{X: 1}, {Y: 1}})
			Expect(err).NotTo(HaveOccurred())
			Expect(proj).To(HaveLen(2))
		})
	})

	Describe("default resolution", func() {
		It("honors the environment variable", func() {
			GinkgoT().Setenv(render.EnvBackend, "fake-beta")
			c := render.NewContext("")
			Expect(c.Backend()).To(Equal("fake-beta"))
		})

		It("rejects an unregistered environment value", func() {
			GinkgoT().Setenv(render.EnvBackend, "mayavi")
			c := render.NewContext("")
			Expect(c.Backend()).To(BeEmpty())
			_, err := c.CreateFigure(figCfg)
			Expect(err).To(MatchError(render.ErrUnknownBackend))
		})
	})
})

var _ = Describe("package-level facade", func() {
	It("delegates through the process-wide context", func() {
		Expect(render.SetBackend("fake-alpha")).To(Succeed())
		Expect(render.GetBackend()).To(Equal("fake-alpha"))

		scene, err := render.CreateFigure(figCfg)
		Expect(err).NotTo(HaveOccurred())
		Expect(render.SetTitle(scene, "t", 0)).To(Succeed())

		err = render.With("fake-beta", func() error {
			Expect(render.GetBackend()).To(Equal("fake-beta"))
			return nil
		})
		Expect(err).NotTo(HaveOccurred())
		Expect(render.GetBackend()).To(Equal("fake-alpha"))
	})

	It("lists the registered backends sorted", func() {
		names := render.Names()
		Expect(names).To(ContainElements("fake-alpha", "fake-beta"))
		Expect(sort.StringsAreSorted(names)).To(BeTrue())
	})
})
