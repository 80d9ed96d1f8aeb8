package stoplist

// English returns the default English stopword list. The returned slice is a
// fresh copy and may be modified by the caller.
func English() []string {
	out := make([]string, len(english))
	copy(out, english)
	return out
}

var english = []string{
	"a", "about", "above", "across", "after", "afterwards", "again", "against", "all", "almost",
	"alone", "along", "already", "also", "although", "always", "am", "among", "amongst", "an",
	"and", "another", "any", "anybody", "anyhow", "anyone", "anything", "anyway", "anywhere", "are",
	"aren't", "around", "as", "at", "back", "be", "became", "because", "become", "becomes",
	"becoming", "been", "before", "beforehand", "behind", "being", "below", "beside", "besides", "between",
	"beyond", "both", "but", "by", "can", "cannot", "can't", "could", "couldn't", "did",
	"didn't", "do", "does", "doesn't", "doing", "done", "don't", "down", "during", "each",
	"eg", "eight", "either", "eleven", "else", "elsewhere", "enough", "etc", "even", "ever",
	"every", "everyone", "everything", "everywhere", "except", "few", "fifteen", "fifty", "first", "five",
	"for", "former", "formerly", "forty", "four", "from", "further", "get", "gets", "getting",
	"give", "given", "gives", "go", "goes", "going", "gone", "got", "had", "hadn't",
	"has", "hasn't", "have", "haven't", "having", "he", "he'd", "he'll", "hence", "her",
	"here", "hereafter", "hereby", "herein", "here's", "hers", "herself", "he's", "him", "himself",
	"his", "how", "however", "how's", "hundred", "i", "i'd", "ie", "if", "i'll",
	"i'm", "in", "inc", "indeed", "instead", "into", "is", "isn't", "it", "its",
	"it's", "itself", "i've", "just", "last", "latter", "latterly", "least", "less", "let's",
	"like", "likely", "ltd", "made", "make", "makes", "many", "may", "maybe", "me",
	"meanwhile", "might", "mine", "more", "moreover", "most", "mostly", "much", "must", "mustn't",
	"my", "myself", "namely", "neither", "never", "nevertheless", "next", "nine", "no", "nobody",
	"none", "nor", "not", "nothing", "now", "nowhere", "of", "off", "often", "on",
	"once", "one", "only", "onto", "or", "other", "others", "otherwise", "ought", "our",
	"ours", "ourselves", "out", "over", "own", "per", "perhaps", "please", "put", "quite",
	"rather", "re", "really", "said", "same", "say", "says", "second", "see", "seem",
	"seemed", "seeming", "seems", "several", "shall", "shan't", "she", "she'd", "she'll", "she's",
	"should", "shouldn't", "since", "six", "sixty", "so", "some", "somehow", "someone", "something",
	"sometime", "sometimes", "somewhere", "still", "such", "take", "taken", "ten", "than", "that",
	"that's", "the", "their", "theirs", "them", "themselves", "then", "thence", "there", "thereafter",
	"thereby", "therefore", "therein", "there's", "thereupon", "these", "they", "they'd", "they'll", "they're",
	"they've", "third", "this", "those", "though", "three", "through", "throughout", "thru", "thus",
	"to", "together", "too", "toward", "towards", "twelve", "twenty", "two", "under", "unless",
	"until", "up", "upon", "us", "used", "very", "via", "was", "wasn't", "we",
	"we'd", "well", "we'll", "were", "we're", "weren't", "we've", "what", "whatever", "what's",
	"when", "whence", "whenever", "when's", "where", "whereafter", "whereas", "whereby", "wherein", "where's",
	"whereupon", "wherever", "whether", "which", "while", "whither", "who", "whoever", "whole", "whom",
	"who's", "whose", "why", "why's", "will", "with", "within", "without", "won't", "would",
	"wouldn't", "yet", "you", "you'd", "you'll", "your", "you're", "yours", "yourself", "yourselves",
	"you've",
}
