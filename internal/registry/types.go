package registry

// Registry holds the qualifying structures of a registry document.
type Registry struct {
	// Structs are the qualifying structures in document order.
	Structs []RawStruct
	// Scanned counts every struct-category <type> element seen, qualifying or not.
	Scanned int
}

// RawStruct is a qualifying structure as found in the registry.
type RawStruct struct {
	Name string // e.g. "VkInstanceCreateInfo"
	// Tag is the discriminant value of the first member, e.g. "VK_STRUCTURE_TYPE_INSTANCE_CREATE_INFO".
	Tag     string
	Members []RawMember
	Line    int // Line of the opening <type> element
}

// RawMember is a single <member> element, kept as text.
type RawMember struct {
	Name     string // Text of <name>
	Leading  string // Text before <type>, e.g. "const"
	Type     string // Text of <type>
	Trailing string // Text between </type> and <name>, e.g. "*" or "* const*"
	Extent   string // Text after </name>, e.g. "[4]" or "[VK_UUID_SIZE]"

	Values   string // "values" attribute (discriminant members only)
	Optional string // "optional" attribute
	Len      string // "len" attribute
	API      string // "api" attribute
}
