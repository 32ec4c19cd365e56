package idx

// usizeDomain and u32Domain back the ready-made index types below.
type (
	usizeDomain struct{ DefaultDomain }
	u32Domain   struct{ DefaultDomain }
)

// Usize is a general-purpose index over uint with the default policy.
// Prefer declaring a dedicated domain per index space; Usize is for code
// that only needs the container API, not the type separation.
type Usize = Of[uint, usizeDomain]

// U32 is a general-purpose 32-bit index with the default policy.
type U32 = Of[uint32, u32Domain]
