package compare

// Task is one of the comparable programming exercises.
type Task struct {
	ID   string
	Name string
}

// Language is one of the comparable implementation languages. The first
// entry is the reference language metrics are measured against.
type Language struct {
	ID   string
	Name string
}

// tasks in display order. The first entry is the default selection.
var tasks = []Task{
	{ID: "fizzbuzz", Name: "FizzBuzz"},
	{ID: "fibonacci", Name: "Fibonacci"},
	{ID: "wordcount", Name: "Word Count"},
}

// languages in display order. Rift is the reference sample; the first
// comparison language is the default selection.
var languages = []Language{
	{ID: "Go", Name: "Go"},
	{ID: "Python", Name: "Python"},
	{ID: "JavaScript", Name: "JavaScript"},
}

// referenceLangID identifies the sample the signed metric deltas are
// computed against.
const referenceLangID = "Rift"

// samples maps task ID -> language ID -> source text.
var samples = map[string]map[string]string{
	"fizzbuzz": {
		referenceLangID: `fn fizzbuzz(n) {
    for i in 1..n {
        if i % 15 == 0 { print("FizzBuzz") }
        else if i % 3 == 0 { print("Fizz") }
        else if i % 5 == 0 { print("Buzz") }
        else { print(i) }
    }
}
`,
		"Go": `func fizzbuzz(n int) {
	for i := 1; i <= n; i++ {
		switch {
		case i%15 == 0:
			fmt.Println("FizzBuzz")
		case i%3 == 0:
			fmt.Println("Fizz")
		case i%5 == 0:
			fmt.Println("Buzz")
		default:
			fmt.Println(i)
		}
	}
}
`,
		"Python": `def fizzbuzz(n):
    for i in range(1, n + 1):
        if i % 15 == 0:
            print("FizzBuzz")
        elif i % 3 == 0:
            print("Fizz")
        elif i % 5 == 0:
            print("Buzz")
        else:
            print(i)
`,
		"JavaScript": `function fizzbuzz(n) {
  for (let i = 1; i <= n; i++) {
    if (i % 15 === 0) console.log("FizzBuzz");
    else if (i % 3 === 0) console.log("Fizz");
    else if (i % 5 === 0) console.log("Buzz");
    else console.log(i);
  }
}
`,
	},
	"fibonacci": {
		referenceLangID: `fn fib(n) {
    if n < 2 { return n }
    return fib(n - 1) + fib(n - 2)
}
`,
		"Go": `func fib(n int) int {
	if n < 2 {
		return n
	}
	return fib(n-1) + fib(n-2)
}
`,
		"Python": `def fib(n):
    if n < 2:
        return n
    return fib(n - 1) + fib(n - 2)
`,
		"JavaScript": `function fib(n) {
  if (n < 2) return n;
  return fib(n - 1) + fib(n - 2);
}
`,
	},
	"wordcount": {
		referenceLangID: `fn wordcount(text) {
    let counts = {}
    for word in text.split(" ") {
        counts[word] = (counts[word] or 0) + 1
    }
    return counts
}
`,
		"Go": `func wordcount(text string) map[string]int {
	counts := make(map[string]int)
	for _, word := range strings.Fields(text) {
		counts[word]++
	}
	return counts
}
`,
		"Python": `def wordcount(text):
    counts = {}
    for word in text.split():
        counts[word] = counts.get(word, 0) + 1
    return counts
`,
		"JavaScript": `function wordcount(text) {
  const counts = {};
  for (const word of text.split(/\s+/)) {
    counts[word] = (counts[word] || 0) + 1;
  }
  return counts;
}
`,
	},
}

// Tasks returns the comparable tasks in display order.
func Tasks() []Task {
	return tasks
}

// Languages returns the comparison languages in display order.
func Languages() []Language {
	return languages
}

// ReferenceLanguage returns the display name of the reference sample.
func ReferenceLanguage() string {
	return referenceLangID
}

// SampleFor returns the source text for a task/language pair.
func SampleFor(taskID, langID string) (string, bool) {
	byLang, ok := samples[taskID]
	if !ok {
		return "", false
	}
	src, ok := byLang[langID]
	return src, ok
}

// ReferenceSampleFor returns the reference source text for a task.
func ReferenceSampleFor(taskID string) (string, bool) {
	return SampleFor(taskID, referenceLangID)
}

func validTaskID(id string) bool {
	_, ok := samples[id]
	return ok
}

func validLangID(id string) bool {
	for _, l := range languages {
		if l.ID == id {
			return true
		}
	}
	return false
}
