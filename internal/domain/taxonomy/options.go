package taxonomy

// boardsByProvince lists the examination boards offered per province. Users
// can still enter a board that is not listed.
var boardsByProvince = map[string][]string{
	"Punjab": {
		"Lahore Board", "Gujranwala Board", "Faisalabad Board", "Multan Board",
		"Rawalpindi Board", "Sargodha Board", "Bahawalpur Board", "Dera Ghazi Khan Board",
		"Sahiwal Board",
	},
	"Sindh": {
		"Karachi Board", "Hyderabad Board", "Sukkur Board", "Larkana Board",
		"Mirpurkhas Board", "Shaheed Benazirabad Board",
	},
	"KPK": {
		"Peshawar Board", "Mardan Board", "Abbottabad Board", "Swat Board",
		"Kohat Board", "Bannu Board", "Malakand Board", "Dera Ismail Khan Board",
	},
	"Balochistan": {"Quetta Board"},
	"Federal":     {"Federal Board"},
}

var (
	schoolSubjects = []string{
		"Physics", "Chemistry", "Biology", "Mathematics", "Computer Science",
		"English", "Urdu", "Islamiat", "Pak Studies", "General Science",
	}
	collegeSubjects = []string{
		"Physics", "Chemistry", "Biology", "Mathematics", "Computer Science",
		"English", "Urdu", "Islamiat", "Pak Studies", "Statistics", "Economics",
	}
	cambridgeSubjects = []string{
		"Physics", "Chemistry", "Biology", "Mathematics", "Additional Mathematics",
		"Computer Science", "English Language", "Urdu", "Islamiyat", "Pakistan Studies",
		"Economics", "Accounting", "Business Studies",
	}
	entryTestSubjects = []string{
		"Physics", "Chemistry", "Biology", "Mathematics", "English", "Logical Reasoning",
	}
	competitionSubjects = []string{
		"English Essay", "English Precis and Composition", "General Science and Ability",
		"Current Affairs", "Pakistan Affairs", "Islamic Studies",
	}
)

// Boards returns the examination boards for a province.
func Boards(province string) []string {
	return clone(boardsByProvince[province])
}

// Subjects returns the suggested subjects for a category and class. The list
// is a starting point for the wizard, not a constraint.
func Subjects(category, classLevel string) []string {
	switch category {
	case CategorySchool:
		return clone(schoolSubjects)
	case CategoryCollege:
		return clone(collegeSubjects)
	case CategoryCambridge:
		return clone(cambridgeSubjects)
	case CategoryEntryTest:
		if classLevel == "MDCAT" || classLevel == "NUMS" {
			return clone(entryTestSubjects)
		}
		// Engineering and armed-forces tests have no biology section.
		out := make([]string, 0, len(entryTestSubjects))
		for _, s := range entryTestSubjects {
			if s != "Biology" {
				out = append(out, s)
			}
		}
		return out
	case CategoryCompetitionExam:
		return clone(competitionSubjects)
	}
	return []string{}
}
