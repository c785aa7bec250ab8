package domain

// OutputExt is the extension given to every output file.
const OutputExt = ".json"

// OutputFilename derives the file name for an element:
// "{arrayPath}-{idPath}-{id}.json".
//
// Inputs are not sanitised. The same three inputs always give the same
// name, which is what lets tolerated collisions overwrite earlier output.
func OutputFilename(arrayPath, idPath, id string) string {
	return arrayPath + "-" + idPath + "-" + id + OutputExt
}
