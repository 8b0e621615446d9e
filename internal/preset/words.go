package preset

import "undercover/internal/domain"

// Words groups a category's words by difficulty
type Words map[domain.Difficulty][]string

// Pair is an undercover pair: civilians get Secret, the imposter gets Imposter
type Pair struct {
	Secret   string `json:"secretWord"`
	Imposter string `json:"imposterWord"`
}

// Pairs groups a category's undercover pairs by difficulty
type Pairs map[domain.Difficulty][]Pair

// classicCategories is the curated list for preset classic rounds
var classicCategories = map[string]Words{
	"Animals": {
		domain.DifficultyEasy:   {"Dog", "Cat", "Lion", "Elephant", "Horse", "Cow", "Rabbit"},
		domain.DifficultyMedium: {"Dolphin", "Octopus", "Falcon", "Panther", "Kangaroo", "Penguin"},
		domain.DifficultyHard:   {"Scorpion", "Chameleon", "Platypus", "Armadillo", "Narwhal"},
		domain.DifficultyInsane: {"Axolotl", "Pangolin", "Tardigrade", "Okapi", "Quokka"},
	},
	"Food & Drinks": {
		domain.DifficultyEasy:   {"Pizza", "Burger", "Apple", "Bread", "Ice Cream", "Coffee"},
		domain.DifficultyMedium: {"Sushi", "Pancake", "Chocolate", "Honey", "Lasagna"},
		domain.DifficultyHard:   {"Wasabi", "Cinnamon", "Risotto", "Kimchi", "Hummus"},
		domain.DifficultyInsane: {"Saffron", "Tempeh", "Kombucha", "Umeboshi", "Gochujang"},
	},
	"Places": {
		domain.DifficultyEasy:   {"School", "Beach", "Hospital", "Park", "Airport", "Zoo"},
		domain.DifficultyMedium: {"Casino", "Subway", "Rooftop", "Stadium", "Harbor"},
		domain.DifficultyHard:   {"Warehouse", "Fortress", "Bunker", "Lighthouse", "Observatory"},
		domain.DifficultyInsane: {"Catacombs", "Monastery", "Planetarium", "Aqueduct", "Ziggurat"},
	},
	"Objects": {
		domain.DifficultyEasy:   {"Chair", "Phone", "Umbrella", "Hammer", "Mirror", "Clock"},
		domain.DifficultyMedium: {"Compass", "Lantern", "Whistle", "Helmet", "Anchor"},
		domain.DifficultyHard:   {"Hourglass", "Gauntlet", "Telescope", "Metronome", "Kaleidoscope"},
		domain.DifficultyInsane: {"Astrolabe", "Sextant", "Abacus", "Theremin", "Zoetrope"},
	},
	"Nature": {
		domain.DifficultyEasy:   {"Rain", "Tree", "Sun", "Mountain", "River", "Snow"},
		domain.DifficultyMedium: {"Thunder", "Tornado", "Volcano", "Rainbow", "Desert"},
		domain.DifficultyHard:   {"Glacier", "Eclipse", "Avalanche", "Tsunami", "Geyser"},
		domain.DifficultyInsane: {"Aurora", "Fjord", "Stalactite", "Monsoon", "Permafrost"},
	},
	"Technology": {
		domain.DifficultyEasy:   {"Computer", "Television", "Robot", "Camera", "Keyboard"},
		domain.DifficultyMedium: {"Drone", "Satellite", "Joystick", "Hologram", "Laser"},
		domain.DifficultyHard:   {"Firewall", "Server", "Antenna", "Circuit", "Radar"},
		domain.DifficultyInsane: {"Quantum Computer", "Blockchain", "Transistor", "Compiler", "Mainframe"},
	},
	"Music & Art": {
		domain.DifficultyEasy:   {"Guitar", "Piano", "Drum", "Painting", "Song"},
		domain.DifficultyMedium: {"Violin", "Canvas", "Sculpture", "Graffiti", "Tattoo"},
		domain.DifficultyHard:   {"Symphony", "Mosaic", "Origami", "Saxophone", "Harp"},
		domain.DifficultyInsane: {"Fresco", "Sitar", "Calligraphy", "Bagpipes", "Didgeridoo"},
	},
	"Sports": {
		domain.DifficultyEasy:   {"Football", "Tennis", "Swimming", "Basketball", "Running"},
		domain.DifficultyMedium: {"Volleyball", "Skiing", "Boxing", "Surfing", "Golf"},
		domain.DifficultyHard:   {"Fencing", "Archery", "Rowing", "Curling", "Polo"},
		domain.DifficultyInsane: {"Hurling", "Sepak Takraw", "Kabaddi", "Biathlon", "Jai Alai"},
	},
}

// undercoverCategories is the curated list of close word pairs
var undercoverCategories = map[string]Pairs{
	"Animals": {
		domain.DifficultyEasy:   {{"Dog", "Wolf"}, {"Cat", "Tiger"}, {"Horse", "Donkey"}},
		domain.DifficultyMedium: {{"Dolphin", "Shark"}, {"Frog", "Toad"}, {"Rabbit", "Hare"}},
		domain.DifficultyHard:   {{"Alligator", "Crocodile"}, {"Leopard", "Cheetah"}, {"Moth", "Butterfly"}},
		domain.DifficultyInsane: {{"Llama", "Alpaca"}, {"Raven", "Crow"}, {"Seal", "Sea Lion"}},
	},
	"Food & Drinks": {
		domain.DifficultyEasy:   {{"Pizza", "Burger"}, {"Coffee", "Tea"}, {"Apple", "Orange"}},
		domain.DifficultyMedium: {{"Sushi", "Sashimi"}, {"Pancake", "Waffle"}, {"Butter", "Margarine"}},
		domain.DifficultyHard:   {{"Espresso", "Ristretto"}, {"Jam", "Marmalade"}, {"Yam", "Sweet Potato"}},
		domain.DifficultyInsane: {{"Gelato", "Sorbet"}, {"Prosciutto", "Jamon"}, {"Miso", "Natto"}},
	},
	"Places": {
		domain.DifficultyEasy:   {{"School", "University"}, {"Beach", "Lake"}, {"Hospital", "Clinic"}},
		domain.DifficultyMedium: {{"Library", "Bookstore"}, {"Museum", "Gallery"}, {"Hotel", "Hostel"}},
		domain.DifficultyHard:   {{"Castle", "Palace"}, {"Cathedral", "Chapel"}, {"Harbor", "Marina"}},
		domain.DifficultyInsane: {{"Monastery", "Convent"}, {"Observatory", "Planetarium"}, {"Bazaar", "Souk"}},
	},
	"Objects": {
		domain.DifficultyEasy:   {{"Chair", "Stool"}, {"Pen", "Pencil"}, {"Cup", "Mug"}},
		domain.DifficultyMedium: {{"Umbrella", "Raincoat"}, {"Lantern", "Torch"}, {"Backpack", "Suitcase"}},
		domain.DifficultyHard:   {{"Compass", "Map"}, {"Hourglass", "Stopwatch"}, {"Telescope", "Binoculars"}},
		domain.DifficultyInsane: {{"Sextant", "Astrolabe"}, {"Quill", "Fountain Pen"}, {"Abacus", "Slide Rule"}},
	},
	"Nature": {
		domain.DifficultyEasy:   {{"Rain", "Snow"}, {"Sun", "Moon"}, {"River", "Lake"}},
		domain.DifficultyMedium: {{"Tornado", "Hurricane"}, {"Volcano", "Geyser"}, {"Desert", "Savanna"}},
		domain.DifficultyHard:   {{"Glacier", "Iceberg"}, {"Meteor", "Comet"}, {"Hail", "Sleet"}},
		domain.DifficultyInsane: {{"Fjord", "Estuary"}, {"Stalactite", "Stalagmite"}, {"Tundra", "Taiga"}},
	},
	"Technology": {
		domain.DifficultyEasy:   {{"Laptop", "Tablet"}, {"Phone", "Radio"}, {"Television", "Monitor"}},
		domain.DifficultyMedium: {{"Drone", "Helicopter"}, {"Keyboard", "Piano"}, {"Router", "Modem"}},
		domain.DifficultyHard:   {{"Virus", "Worm"}, {"Server", "Cloud"}, {"Satellite", "Space Station"}},
		domain.DifficultyInsane: {{"Compiler", "Interpreter"}, {"Transistor", "Diode"}, {"Firmware", "Driver"}},
	},
}
