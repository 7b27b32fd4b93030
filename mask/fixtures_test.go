package mask

var (
	usDesc = Descriptor{Country: "US", Template: Fixed("(xxx) xxx-xxxx"), TrunkPrefix: "1", CallingCode: 1}
	ruDesc = Descriptor{Country: "RU", Template: Fixed("(xxx) xxx-xx-xx"), TrunkPrefix: "8", CallingCode: 7}

	// Seven-digit local numbers switch to an eight-digit grouping.
	localDesc = Descriptor{Country: "AR", Template: Dynamic(func(n int) string {
		if n <= 7 {
			return "xxx-xxxx"
		}
		return "xxxx-xxxx"
	}), TrunkPrefix: "0", CallingCode: 54}
)
