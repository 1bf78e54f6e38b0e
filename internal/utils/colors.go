package utils

type colors struct {
	c map[string]int
}

var Colors = colors{
	// Discord's own brand palette, so embeds blend in with the client
	c: map[string]int{
		"Blurple": 0x5865f2,
		"Red":     0xed4245,
	},
}

// Info returns the color code for informational messages
func (c colors) Info() int {
	return c.c["Blurple"]
}

// Error returns the color code for error messages
func (c colors) Error() int {
	return c.c["Red"]
}
