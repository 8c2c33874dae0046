// Package scrubline drives scroll-scrubbed page animations on [Ebitengine].
//
// A page is a headline on a horizontal track, a car that drives across the
// track as the reader scrolls, a trail that grows behind the car, and four
// statistic cards that appear once the car is under way. The headline's
// letters turn visible as the trail sweeps past them.
//
// # Quick start
//
//	cfg := scrubline.VariantExit()
//	scene, err := scrubline.NewScene(cfg, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := scrubline.Run(scene, scrubline.RunConfig{Width: 1280, Height: 720}); err != nil {
//		log.Fatal(err)
//	}
//
// # Engine
//
// [Engine] is independent of the scene graph. It is installed with a
// [Geometry] (measured container, car and letter positions) and then fed
// [ScrollSample] and [PointerSample] values. For every sample it computes a
// [Style] per target and hands it to a [RenderSink]:
//
//	eng := scrubline.NewEngine(cfg, sink)
//	eng.Install(geom)
//	eng.Scroll(scrubline.ScrollSample{ScrollY: y, Generation: eng.Generation()})
//
// Every Install bumps the generation and revokes the previous [TargetSet].
// Samples from an older generation are dropped with [DroppedStale]; samples
// sent before any ready geometry are dropped with [DroppedNotReady].
//
// # Variants
//
// [VariantEdgeStop], [VariantExit] and [VariantExitEased] are the presets.
// They differ in where the car stops, how letters reveal ([RevealInstant] or
// [RevealTween]), how cards enter ([CardsFade] or [CardsExplode]) and which
// easing curves drive each phase. Curves are named the way timeline tools
// name them ("power2.out", "sine.inOut"); see [EasingByName].
//
// # Scene
//
// [Scene] is an ebiten.Game. It owns a small retained node tree, measures it
// into a Geometry on every resize, and binds the nodes to the engine with a
// [NodeSink]. Wheel, keyboard, mouse and touch input scroll the document;
// [Scene.InjectScroll] and friends, together with [LoadTestScript], let tests
// and demos script the same input deterministically.
//
// # Logging
//
// The package logs through log/slog and is silent by default. Call
// [SetLogger] to route its records into an application logger.
//
// [Ebitengine]: https://ebitengine.org
package scrubline
