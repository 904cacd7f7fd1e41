package fusible

import "strings"

// Policy describes the fusion rules compiled into this build.
type Policy struct {
	FuseNamed       bool // MulValue/ValueMul return a Product
	FuseTemporaries bool // MulTemp/TempMul return a Product regardless of FuseNamed
	ProductTieBreak bool // Product.AddProduct/SubProduct exist
}

// CurrentPolicy returns the policy selected by the build tags.
func CurrentPolicy() Policy {
	return Policy{
		FuseNamed:       FuseNamed,
		FuseTemporaries: FuseTemporaries,
		ProductTieBreak: ProductTieBreak,
	}
}

// TemporariesFused reports whether MulTemp/TempMul end up deferring, either
// on their own or through the named-value policy.
func (p Policy) TemporariesFused() bool {
	return p.FuseTemporaries || p.FuseNamed
}

// Tags returns the build tags that select p.
func (p Policy) Tags() []string {
	var tags []string
	if p.FuseNamed {
		tags = append(tags, "fusible_fuse_named")
	}
	if !p.FuseTemporaries {
		tags = append(tags, "fusible_no_fuse_temp")
	}
	if p.ProductTieBreak {
		tags = append(tags, "fusible_product_tiebreak")
	}
	return tags
}

// String returns a one-line summary such as
// "named=rounded temporary=fused product±product=rejected".
func (p Policy) String() string {
	var sb strings.Builder
	sb.WriteString("named=")
	sb.WriteString(mode(p.FuseNamed))
	sb.WriteString(" temporary=")
	sb.WriteString(mode(p.TemporariesFused()))
	sb.WriteString(" product±product=")
	if p.ProductTieBreak {
		sb.WriteString("round-right")
	} else {
		sb.WriteString("rejected")
	}
	return sb.String()
}

func mode(fused bool) string {
	if fused {
		return "fused"
	}
	return "rounded"
}
