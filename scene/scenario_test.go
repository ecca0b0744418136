package scene

import (
	"testing"

	"github.com/stenberg/whittedrt/internal/frame"
	"github.com/stenberg/whittedrt/internal/prim"
	"github.com/stenberg/whittedrt/output"
	"github.com/stenberg/whittedrt/tracer"
)

const (
	scenarioWidth  = 48
	scenarioHeight = 32
)

func TestRenderIsIdenticalSequentialAndParallel(t *testing.T) {
	s, cam := CannedTestScene()

	sequential := tracer.RenderFrame(s, cam, scenarioWidth, scenarioHeight, false)
	seqImg := output.Quantize(sequential.Finalize())

	parallel := tracer.RenderFrame(s, cam, scenarioWidth, scenarioHeight, true)
	parImg := output.Quantize(parallel.Finalize())

	index, err := prim.SSIM(seqImg, parImg)
	if err != nil {
		t.Fatalf("SSIM: %v", err)
	}
	if index != 1.0 {
		t.Errorf("SSIM(sequential, parallel) = %v, want 1.0: a worker-pool render must match the row-major loop pixel for pixel", index)
	}
}

func TestSupersampledDownsampleStaysPerceptuallyCloseToDirectRender(t *testing.T) {
	s, cam := CannedTestScene()

	direct := tracer.RenderFrame(s, cam, scenarioWidth, scenarioHeight, false)
	directImg := output.Quantize(direct.Finalize())

	const k = 1 // one supersample+downsample pass, 2x linear oversampling
	super := tracer.RenderFrame(s, cam, scenarioWidth<<k, scenarioHeight<<k, false)
	downsampled := frame.DownsampleN(super.Finalize(), k)
	downsampledImg := output.Quantize(downsampled)

	index, err := prim.SSIM(directImg, downsampledImg)
	if err != nil {
		t.Fatalf("SSIM: %v", err)
	}
	if index < 0.9 {
		t.Errorf("SSIM(direct, supersampled-then-downsampled) = %v, want >= 0.9: antialiasing should not change the image's gross structure", index)
	}
}
