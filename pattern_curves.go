package hatch

import "math"

// guillocheFill draws nested epitrochoid rings (spirograph curves)
// scaled to the polygon, one per spacing step up to a small cap.
func guillocheFill(ctx *patternContext) []Line {
	scale := math.Min(ctx.width, ctx.height) / 2 * 0.9
	numRings := int(math.Ceil(scale / ctx.spacing))
	if numRings > 5 {
		numRings = 5
	}

	var lines []Line
	for ring := 1; ring <= numRings; ring++ {
		ringScale := float64(ring) / float64(numRings) * scale

		// R/r = 5/3 with the pen near the rim traces a classic
		// banknote rosette.
		outerR := ringScale
		innerR := outerR / (5.0 / 3.0)
		penDist := innerR * 0.8

		lines = append(lines, epitrochoid(ctx, outerR, innerR, penDist)...)
	}
	return lines
}

func epitrochoid(ctx *patternContext, bigR, smallR, penD float64) []Line {
	// Close after the small circle's full cycle relative to the ring.
	maxT := 2 * math.Pi * 3
	steps := int(maxT * 50)
	dt := maxT / float64(steps)

	sum := bigR + smallR
	freq := sum / smallR

	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) * dt
		points = append(points, Point{
			X: ctx.center.X + sum*math.Cos(t+ctx.angleRad) - penD*math.Cos(freq*t+ctx.angleRad),
			Y: ctx.center.Y + sum*math.Sin(t+ctx.angleRad) - penD*math.Sin(freq*t+ctx.angleRad),
		})
	}
	return ctx.clipSampledCurve(points)
}

// lissajousFill draws nested Lissajous figures with classic frequency
// ratios, scaled stepwise to fill the polygon.
func lissajousFill(ctx *patternContext) []Line {
	scaleX := ctx.width / 2 * 0.9
	scaleY := ctx.height / 2 * 0.9
	phase := ctx.angleRad

	numCurves := int(math.Ceil(math.Min(scaleX, scaleY) / ctx.spacing))
	if numCurves > 8 {
		numCurves = 8
	}

	ratios := [4][2]float64{{3, 2}, {5, 4}, {3, 4}, {5, 6}}

	var lines []Line
	for idx := 1; idx <= numCurves; idx++ {
		t := float64(idx) / float64(numCurves)
		ratio := ratios[idx%len(ratios)]
		lines = append(lines, singleLissajous(ctx, scaleX*t, scaleY*t, ratio[0], ratio[1], phase)...)
	}
	return lines
}

func singleLissajous(ctx *patternContext, ampX, ampY, freqA, freqB, phase float64) []Line {
	maxT := 2 * math.Pi * math.Max(freqA, freqB)
	steps := int(maxT * 30)
	if steps > 500 {
		steps = 500
	}
	dt := maxT / float64(steps)

	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) * dt
		points = append(points, Point{
			X: ctx.center.X + ampX*math.Sin(freqA*t+phase),
			Y: ctx.center.Y + ampY*math.Sin(freqB*t),
		})
	}
	return ctx.clipSampledCurve(points)
}

// roseFill draws nested rhodonea curves r = R*cos(k*theta). The angle
// parameter selects the petal count in 60-degree bands and rotates the
// figure within each band.
func roseFill(ctx *patternContext) []Line {
	maxRadius := math.Min(ctx.width, ctx.height) / 2 * 0.9

	deg := normalizeDegrees(ctx.angleDeg)
	k := float64(2 + (int(deg)/60)%6)
	rotation := math.Mod(deg, 60) * degToRad

	numCurves := int(math.Ceil(maxRadius / ctx.spacing))
	if numCurves > 10 {
		numCurves = 10
	}

	var lines []Line
	for idx := 1; idx <= numCurves; idx++ {
		radius := float64(idx) / float64(numCurves) * maxRadius
		lines = append(lines, singleRose(ctx, radius, k, rotation)...)
	}
	return lines
}

func singleRose(ctx *patternContext, maxRadius, k, rotation float64) []Line {
	steps := 400
	dtheta := 2 * math.Pi / float64(steps)

	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		theta := float64(i) * dtheta
		r := maxRadius * math.Abs(math.Cos(k*theta))
		points = append(points, Point{
			X: ctx.center.X + r*math.Cos(theta+rotation),
			Y: ctx.center.Y + r*math.Sin(theta+rotation),
		})
	}
	return ctx.clipSampledCurve(points)
}

// pendulum is one decaying sinusoid of a harmonograph axis.
type pendulum struct {
	amplitude float64
	frequency float64
	phase     float64
	damping   float64
}

func (p pendulum) evaluate(t float64) float64 {
	return p.amplitude * math.Sin(p.frequency*t+p.phase) * math.Exp(-p.damping*t)
}

// harmonographFill simulates a two-pendulum-per-axis harmonograph:
// each axis sums two decaying sinusoids, traced until the motion has
// decayed to 5% of its initial amplitude.
func harmonographFill(ctx *patternContext) []Line {
	baseAmplitude := math.Min(ctx.width, ctx.height) / 2 * 0.9
	basePhase := ctx.angleRad

	numCurves := int(math.Ceil(baseAmplitude / ctx.spacing))
	if numCurves < 1 {
		numCurves = 1
	}
	if numCurves > 12 {
		numCurves = 12
	}

	presets := [6][4]float64{
		{2, 3, 3, 2},
		{2, 3, 3, 4},
		{3, 2, 4, 3},
		{4, 3, 3, 4},
		{5, 4, 4, 5},
		{3, 4, 5, 3},
	}

	var lines []Line
	for idx := 0; idx < numCurves; idx++ {
		scale := 1 - float64(idx)/(float64(numCurves)+1)*0.3
		amp := baseAmplitude * scale

		preset := presets[(idx+int(normalizeDegrees(ctx.angleDeg))/30)%len(presets)]
		phase := basePhase + float64(idx)*math.Pi/6
		damping := 0.002 + float64(idx)*0.001

		lines = append(lines, singleHarmonograph(ctx, amp, preset, phase, damping)...)
	}
	return lines
}

func singleHarmonograph(ctx *patternContext, amplitude float64, freq [4]float64, phase, damping float64) []Line {
	px1 := pendulum{amplitude * 0.6, freq[0], phase, damping}
	px2 := pendulum{amplitude * 0.4, freq[1], phase + math.Pi/4, damping * 1.2}
	py1 := pendulum{amplitude * 0.6, freq[2], phase + math.Pi/2, damping}
	py2 := pendulum{amplitude * 0.4, freq[3], phase + math.Pi*0.75, damping * 1.2}

	maxT := -math.Log(0.05) / damping
	steps := int(maxT * 50)
	if steps < 200 {
		steps = 200
	}
	if steps > 2000 {
		steps = 2000
	}
	dt := maxT / float64(steps)

	points := make([]Point, 0, steps+1)
	for i := 0; i <= steps; i++ {
		t := float64(i) * dt
		points = append(points, Point{
			X: ctx.center.X + px1.evaluate(t) + px2.evaluate(t),
			Y: ctx.center.Y + py1.evaluate(t) + py2.evaluate(t),
		})
	}
	return ctx.clipSampledCurve(points)
}
