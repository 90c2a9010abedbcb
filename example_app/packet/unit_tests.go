package packet

import (
	v1 "unit_tester/pkg/v1"
)

// RegisterUnitTests adds the packet builder suite to a test plan.
func RegisterUnitTests(p *v1.Plan) {
	p.Suite("Packet Builder", func(r *v1.Runner) {
		testConfigFrameBuild(r)
		testConfigFrameLimits(r)
	})
}

func testConfigFrameBuild(r *v1.Runner) {
	r.CaseStart("Verify config frame correctly built")

	var b Builder
	b.SetNode(12)
	b.SetData(0x12345678)
	b.Build()

	frame := b.Frame()
	r.ExpectUint16Eq(FastConfigHeader, frame.HeaderID)
	r.ExpectUint8Eq(12, frame.NodeNum)
	r.ExpectUint32Eq(0x12345678, frame.Data)
	r.ExpectBoolEq(true, frame.ConfigValid)

	r.CaseEnd()
}

func testConfigFrameLimits(r *v1.Runner) {
	r.CaseStart("Verify config frame limits enforced")

	var b Builder
	b.SetNode(MaxNodeNum + 1)
	b.Build()

	// an out-of-bounds node must be rejected
	r.ExpectBoolEq(false, b.Frame().ConfigValid)

	r.CaseEnd()
}
