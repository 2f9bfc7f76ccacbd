package oasis

// OASIS record IDs. Records 0-34 are the standard table; anything above
// is handed to the vendor-extension heuristics.
const (
	recPad                uint64 = 0
	recStart              uint64 = 1
	recEnd                uint64 = 2
	recCellNameImplicit   uint64 = 3
	recCellNameExplicit   uint64 = 4
	recTextString         uint64 = 5
	recTextStringRef      uint64 = 6
	recPropName           uint64 = 7
	recPropNameRef        uint64 = 8
	recPropString         uint64 = 9
	recPropStringRef      uint64 = 10
	recLayerName          uint64 = 11
	recLayerNameText      uint64 = 12
	recCellRef            uint64 = 13
	recCellName           uint64 = 14
	recXYAbsolute         uint64 = 15
	recXYRelative         uint64 = 16
	recPlacement          uint64 = 17
	recPlacementTransform uint64 = 18
	recText               uint64 = 19
	recRectangle          uint64 = 20
	recPolygon            uint64 = 21
	recPath               uint64 = 22
	recTrapezoidAB        uint64 = 23
	recTrapezoidA         uint64 = 24
	recTrapezoidB         uint64 = 25
	recCTrapezoid         uint64 = 26
	recCircle             uint64 = 27
	recProperty           uint64 = 28
	recPropertyRepeat     uint64 = 29
	recXName              uint64 = 30
	recXNameRef           uint64 = 31
	recXElement           uint64 = 32
	recXGeometry          uint64 = 33
	recCBlock             uint64 = 34
)

// Placement info-byte flags. Record 17 lays the byte out as CNXYRAAF and
// record 18 as CNXYRMAF; C, N, X, Y and R sit in the same positions in
// both, so only the transform flags are specific to record 18.
const (
	placementHasCell  byte = 0x80
	placementByRef    byte = 0x40
	placementHasX     byte = 0x20
	placementHasY     byte = 0x10
	placementHasRep   byte = 0x08
	placementHasMag   byte = 0x04
	placementHasAngle byte = 0x02
)

const (
	// stallLimit aborts the parse after this many consecutive records
	// that each advanced the cursor by at most smallAdvanceBytes.
	stallLimit        = 4096
	smallAdvanceBytes = 3
)

// maxRecordCount caps the total number of records per parse, shared
// between the top-level stream and all CBLOCK sub-streams. A variable
// so tests can lower it.
var maxRecordCount uint64 = 50_000_000

// Sanity bounds for the vendor-extension skip heuristics. These were
// tuned against real vendor files; keep them as they are.
const (
	maxVendorVarint uint64 = 1 << 20
	maxVendorString        = 4096
	maxVendorCoord  int64  = 1 << 32
)
