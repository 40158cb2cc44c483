package taxonomy

import (
	"sort"
	"sync"
)

// Key is the part of a resource selection that decides where the resource
// is stored. Listing pages build the same Key from their URL to find what
// the upload flow wrote.
type Key struct {
	MainCategory string `json:"mainCategory" yaml:"mainCategory"`
	Province     string `json:"province,omitempty" yaml:"province,omitempty"`
	ClassLevel   string `json:"classLevel,omitempty" yaml:"classLevel,omitempty"`
	ContentType  string `json:"contentType,omitempty" yaml:"contentType,omitempty"`
}

// General content types with their own collection.
var generalCollections = map[string]string{
	ContentUrduCalligraphy:    "UrduCalligraphy",
	ContentEnglishCalligraphy: "EnglishCalligraphy",
	ContentEnglishLanguage:    "EnglishLanguage",
}

// Classes stored without a province even though their category is
// otherwise province-partitioned.
var nationalUniversityClasses = map[string]bool{
	"VirtualUniversity":         true,
	"AllamaIqbalOpenUniversity": true,
	"MBBS":                      true,
	"BDS":                       true,
}

var nationalEntryTestClasses = map[string]bool{
	"ECAT": true,
	"NUMS": true,
	"AMC":  true,
	"PMA":  true,
}

// ResolveCollectionName returns the collection a resource with key k is
// stored in. The rules are applied in order:
//
//  1. General: the calligraphy/language content types map to their own
//     collection; other content types use their own name, and an empty
//     content type yields "General".
//  2. Cambridge and Competition Exam: class + content type. Province is
//     ignored.
//  3. University national classes (VU, AIOU, MBBS, BDS): class + content type.
//  4. Entry Test national classes (ECAT, NUMS, AMC, PMA): class + content type.
//  5. Everything else: province + class + content type, skipping empty
//     parts, or DefaultCollection if all three are empty.
//
// Listing pages depend on this exact precedence; changing it orphans stored
// documents.
func ResolveCollectionName(k Key) string {
	switch {
	case k.MainCategory == CategoryGeneral:
		if name, ok := generalCollections[k.ContentType]; ok {
			return name
		}
		if k.ContentType == "" {
			return CategoryGeneral
		}
		return k.ContentType
	case k.MainCategory == CategoryCambridge, k.MainCategory == CategoryCompetitionExam:
		return k.ClassLevel + k.ContentType
	case k.MainCategory == CategoryUniversity && nationalUniversityClasses[k.ClassLevel]:
		return k.ClassLevel + k.ContentType
	case k.MainCategory == CategoryEntryTest && nationalEntryTestClasses[k.ClassLevel]:
		return k.ClassLevel + k.ContentType
	}
	name := k.Province + k.ClassLevel + k.ContentType
	if name == "" {
		return DefaultCollection
	}
	return name
}

var (
	indexOnce sync.Once
	nameIndex map[string]Key
	nameList  []string
)

// buildIndex enumerates every key the table can produce, in category order,
// and records the first key for each collection name.
func buildIndex() {
	nameIndex = make(map[string]Key)
	add := func(k Key) {
		name := ResolveCollectionName(k)
		if _, seen := nameIndex[name]; seen {
			return
		}
		nameIndex[name] = k
		nameList = append(nameList, name)
	}

	for _, cat := range categoryOrder {
		c := categories[cat]
		types := make([]string, 0, len(c.ContentTypes))
		for ct := range c.ContentTypes {
			types = append(types, ct)
		}
		sort.Strings(types)

		if len(c.Classes) == 0 {
			for _, ct := range types {
				add(Key{MainCategory: cat, ContentType: ct})
			}
			continue
		}
		for _, class := range c.Classes {
			provs := ListProvinces(cat, class)
			for _, ct := range types {
				if len(provs) == 0 {
					add(Key{MainCategory: cat, ClassLevel: class, ContentType: ct})
					continue
				}
				for _, p := range provs {
					add(Key{MainCategory: cat, Province: p, ClassLevel: class, ContentType: ct})
				}
			}
		}
	}
	sort.Strings(nameList)
}

// Lookup returns the key that resolves to the given collection name. Only
// names reachable from the table are known; anything else reports false.
func Lookup(collection string) (Key, bool) {
	indexOnce.Do(buildIndex)
	k, ok := nameIndex[collection]
	return k, ok
}

// KnownCollections returns every collection name the table can produce,
// sorted.
func KnownCollections() []string {
	indexOnce.Do(buildIndex)
	return clone(nameList)
}
