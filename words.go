package main

// Word lists backing solo-mode answer validation. Multiplayer rounds
// skip dictionary checks entirely; only solo play consults these.
var wordLists = map[Category][]string{
	CategoryName: {
		"AARON", "ADAM", "AHMED", "AISHA", "ALEXANDER", "ALICE", "AMELIA", "ANDREW", "ANNA", "ANTHONY",
		"ARJUN", "ARTHUR", "BARBARA", "BENJAMIN", "BRIAN", "CARLOS", "CHARLES", "CHARLOTTE", "CHLOE", "CLARA",
		"DANIEL", "DAVID", "DIEGO", "DONNA", "EDWARD", "ELIZABETH", "EMMA", "ERIC", "FATIMA", "FRANK",
		"GEORGE", "GRACE", "HANNAH", "HASSAN", "HELEN", "HENRY", "HIROSHI", "IBRAHIM", "INGRID", "ISABELLA",
		"JACK", "JACOB", "JAMES", "JENNIFER", "JESSICA", "JOHN", "JOSEPH", "JUAN", "KAREN", "KEVIN",
		"KRISHNA", "LAURA", "LIAM", "LINDA", "LISA", "LOUIS", "LUNA", "MARCO", "MARIA", "MARIE",
		"MARK", "MARY", "MATTHEW", "MAYA", "MICHAEL", "MOHAMMED", "NANCY", "NICHOLAS", "NOAH", "NORA",
		"OLIVIA", "OMAR", "OSCAR", "PATRICIA", "PAUL", "PETER", "PIERRE", "PRIYA", "QUINN", "RACHEL",
		"RICHARD", "ROBERT", "RUTH", "RYAN", "SAMUEL", "SARAH", "SCOTT", "SIMRAN", "SOPHIA", "STEVEN",
		"THOMAS", "TIMOTHY", "TYLER", "URSULA", "VALENTINA", "VIOLET", "WALTER", "WEI", "WILLIAM", "YUKI",
		"YUSUF", "ZACHARY", "ZAINAB", "ZARA",
	},
	CategoryPlace: {
		"AFGHANISTAN", "ALASKA", "AMSTERDAM", "ARGENTINA", "ATLANTA", "AUSTRALIA", "AUSTRIA", "BANGKOK", "BARCELONA", "BEIJING",
		"BELGIUM", "BERLIN", "BOSTON", "BRAZIL", "CAIRO", "CALIFORNIA", "CANADA", "CHICAGO", "CHILE", "CHINA",
		"COLOMBIA", "CUBA", "DALLAS", "DELHI", "DENMARK", "DENVER", "DETROIT", "DUBLIN", "ECUADOR", "EGYPT",
		"ENGLAND", "ETHIOPIA", "FINLAND", "FLORIDA", "FRANCE", "GEORGIA", "GERMANY", "GHANA", "GREECE", "HAWAII",
		"HELSINKI", "HOUSTON", "HUNGARY", "ICELAND", "INDIA", "INDONESIA", "IRAN", "IRELAND", "ISRAEL", "ISTANBUL",
		"ITALY", "JAMAICA", "JAPAN", "JORDAN", "KENYA", "KOLKATA", "KUWAIT", "LAGOS", "LIMA", "LONDON",
		"MADRID", "MALAYSIA", "MEXICO", "MIAMI", "MILAN", "MOROCCO", "MOSCOW", "MUMBAI", "NAIROBI", "NEPAL",
		"NETHERLANDS", "NEVADA", "NORWAY", "OHIO", "OREGON", "OSLO", "PAKISTAN", "PARIS", "PERU", "PHILADELPHIA",
		"POLAND", "PORTUGAL", "QATAR", "QUEBEC", "ROMANIA", "ROME", "RUSSIA", "SEATTLE", "SEOUL", "SINGAPORE",
		"SPAIN", "SWEDEN", "SWITZERLAND", "SYDNEY", "TEXAS", "THAILAND", "TOKYO", "TORONTO", "TURKEY", "UGANDA",
		"UKRAINE", "URUGUAY", "UTAH", "VENEZUELA", "VERMONT", "VIENNA", "VIETNAM", "VIRGINIA", "WASHINGTON", "WYOMING",
		"XIAN", "YEMEN", "ZAMBIA", "ZIMBABWE",
	},
	CategoryAnimal: {
		"AARDVARK", "ALLIGATOR", "ALPACA", "ANT", "ANTELOPE", "APE", "ARMADILLO", "BABOON", "BADGER", "BAT",
		"BEAR", "BEAVER", "BEE", "BISON", "BUFFALO", "BUTTERFLY", "CAMEL", "CAT", "CHEETAH", "CHICKEN",
		"CHIMPANZEE", "COBRA", "COW", "CRAB", "CROCODILE", "CROW", "DEER", "DINGO", "DOG", "DOLPHIN",
		"DONKEY", "DOVE", "DUCK", "EAGLE", "EEL", "ELEPHANT", "ELK", "EMU", "FALCON", "FERRET",
		"FISH", "FLAMINGO", "FOX", "FROG", "GAZELLE", "GECKO", "GIRAFFE", "GOAT", "GOOSE", "GORILLA",
		"HAMSTER", "HAWK", "HEDGEHOG", "HERON", "HIPPO", "HORSE", "HYENA", "IBEX", "IBIS", "IGUANA",
		"IMPALA", "JACKAL", "JAGUAR", "JAY", "JELLYFISH", "KANGAROO", "KIWI", "KOALA", "LEMUR", "LEOPARD",
		"LION", "LIZARD", "LLAMA", "LOBSTER", "LYNX", "MAGPIE", "MOLE", "MONKEY", "MOOSE", "MOUSE",
		"NARWHAL", "NEWT", "OCTOPUS", "OSTRICH", "OTTER", "OWL", "PANDA", "PANTHER", "PARROT", "PEACOCK",
		"PELICAN", "PENGUIN", "PIG", "PLATYPUS", "QUAIL", "QUOKKA", "RABBIT", "RACCOON", "RAT", "RAVEN",
		"REINDEER", "RHINOCEROS", "ROBIN", "SEAL", "SHARK", "SHEEP", "SKUNK", "SNAKE", "SPIDER", "SQUIRREL",
		"SWAN", "TIGER", "TOAD", "TOUCAN", "TROUT", "TURKEY", "TURTLE", "URCHIN", "VIPER", "VOLE",
		"VULTURE", "WALRUS", "WASP", "WEASEL", "WHALE", "WOLF", "WOMBAT", "WORM", "XERUS", "YAK",
		"ZEBRA", "ZEBU",
	},
	CategoryThing: {
		"AIRPLANE", "ANCHOR", "APPLE", "APRON", "ARROW", "BALL", "BALLOON", "BANANA", "BASKET", "BATTERY",
		"BELT", "BICYCLE", "BLANKET", "BOOK", "BOTTLE", "BOWL", "BRIDGE", "BROOM", "BRUSH", "BUCKET",
		"BUTTON", "CAMERA", "CANDLE", "CAR", "CARPET", "CHAIR", "CLOCK", "COIN", "COMPUTER", "CUP",
		"CURTAIN", "DESK", "DIAMOND", "DOOR", "DRUM", "ENGINE", "ENVELOPE", "ERASER", "FAN", "FENCE",
		"FLAG", "FLOWER", "FORK", "FRAME", "GATE", "GLASS", "GLOBE", "GLOVE", "GUITAR", "HAMMER",
		"HAT", "HELMET", "HOUSE", "ICE", "IRON", "ISLAND", "JACKET", "JAR", "JOURNAL", "JUICE",
		"KETTLE", "KEY", "KEYBOARD", "KITE", "KNIFE", "LADDER", "LAMP", "LAPTOP", "LETTER", "LOCK",
		"MAGAZINE", "MAP", "MIRROR", "NAIL", "NECKLACE", "NEEDLE", "NEWSPAPER", "NOTEBOOK", "ORANGE", "OVEN",
		"PAPER", "PEN", "PENCIL", "PHONE", "PIANO", "PILLOW", "PIZZA", "PLATE", "QUILT", "RADIO",
		"RING", "ROCKET", "ROPE", "RULER", "SCISSORS", "SHIRT", "SHOE", "SOAP", "SPOON", "STAPLER",
		"SWORD", "TABLE", "TELEPHONE", "TELESCOPE", "TENT", "TICKET", "TOWEL", "TRAIN", "TRUCK", "UMBRELLA",
		"UNIFORM", "VASE", "VIOLIN", "WALLET", "WATCH", "WHEEL", "WINDOW", "XYLOPHONE", "YACHT", "YARN",
		"ZIPPER",
	},
}

// Solo letter selection tiers: early rounds draw from letters with
// plenty of answers, later rounds mix in the awkward ones.
var difficultyLetters = map[string][]string{
	"easy": {
		"A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
		"N", "O", "P", "R", "S", "T", "U", "V", "W",
	},
	"medium": {"Q", "X", "Y", "Z"},
	"hard":   {"Q", "X", "Z"},
}

// difficultyForRound maps a solo round number to a letter tier.
func difficultyForRound(round int) string {
	switch {
	case round <= 3:
		return "easy"
	case round <= 6:
		return "medium"
	default:
		return "hard"
	}
}
