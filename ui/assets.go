package ui

// Portraits keyed by catalog ImageRef
var portraits = map[string][]string{
	"1.png": {
		`   .-"""""-.   `,
		`  /  _   _  \  `,
		` |  (o) (o)  | `,
		` |    ___    | `,
		`  \  (___)  /  `,
		`   '-.___.-'   `,
		`  ~~ sudan ~~  `,
	},
	"2.png": {
		`    ,,,,,,,    `,
		`   ( @   @ )   `,
		`  (    ^    )  `,
		`   \  \_/  /   `,
		`    '-----'    `,
		`    /|   |\    `,
		`   zirzop!!!   `,
	},
	"3.png": {
		`   _._._._._   `,
		`  |  -   -  |  `,
		`  |  o   o  |  `,
		`  |    <    |  `,
		`  |  \___/  |  `,
		`   \_______/   `,
		`     mert      `,
	},
}

var fallbackPortrait = []string{
	`  .---------.  `,
	`  |  ?   ?  |  `,
	`  |    -    |  `,
	`  '---------'  `,
}

// Portrait returns the art for imageRef, unknown refs get a placeholder
func Portrait(imageRef string) []string {
	if art, ok := portraits[imageRef]; ok {
		return art
	}
	return fallbackPortrait
}
