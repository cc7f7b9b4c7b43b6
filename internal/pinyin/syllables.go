// Package pinyin holds the toneless syllable inventory, the tone-mark
// renderer and the syllable segmenter for Mandarin pinyin.
package pinyin

// syllables lists every phonotactically valid toneless pinyin syllable,
// grouped by initial. The zero-initial group uses the standalone
// spellings (yi/wu/yu etc.) as they appear in dictionary pronunciations.
var syllables = []string{
	// zero initial
	"a", "o", "e", "ai", "ei", "ao", "ou", "an", "en", "ang", "eng", "er",
	"yi", "ya", "yo", "ye", "yao", "you", "yan", "yin", "yang", "ying", "yong",
	"wu", "wa", "wo", "wai", "wei", "wan", "wen", "wang", "weng",
	"yu", "yue", "yuan", "yun",
	// b
	"ba", "bo", "bai", "bei", "bao", "ban", "ben", "bang", "beng",
	"bi", "bie", "biao", "bian", "bin", "bing", "bu",
	// p
	"pa", "po", "pai", "pei", "pao", "pou", "pan", "pen", "pang", "peng",
	"pi", "pie", "piao", "pian", "pin", "ping", "pu",
	// m
	"ma", "mo", "me", "mai", "mei", "mao", "mou", "man", "men", "mang", "meng",
	"mi", "mie", "miao", "miu", "mian", "min", "ming", "mu",
	// f
	"fa", "fo", "fei", "fou", "fan", "fen", "fang", "feng", "fu",
	// d
	"da", "de", "dai", "dei", "dao", "dou", "dan", "den", "dang", "deng",
	"di", "dia", "die", "diao", "diu", "dian", "ding", "dong",
	"du", "duo", "dui", "duan", "dun",
	// t
	"ta", "te", "tai", "tao", "tou", "tan", "tang", "teng",
	"ti", "tie", "tiao", "tian", "ting", "tong",
	"tu", "tuo", "tui", "tuan", "tun",
	// n
	"na", "ne", "nai", "nei", "nao", "nou", "nan", "nen", "nang", "neng",
	"ni", "nie", "niao", "niu", "nian", "nin", "niang", "ning", "nong",
	"nu", "nuo", "nuan", "nü", "nüe",
	// l
	"la", "le", "lo", "lai", "lei", "lao", "lou", "lan", "lang", "leng",
	"li", "lia", "lie", "liao", "liu", "lian", "lin", "liang", "ling", "long",
	"lu", "luo", "luan", "lun", "lü", "lüe",
	// g
	"ga", "ge", "gai", "gei", "gao", "gou", "gan", "gen", "gang", "geng", "gong",
	"gu", "gua", "guo", "guai", "gui", "guan", "gun", "guang",
	// k
	"ka", "ke", "kai", "kei", "kao", "kou", "kan", "ken", "kang", "keng", "kong",
	"ku", "kua", "kuo", "kuai", "kui", "kuan", "kun", "kuang",
	// h
	"ha", "he", "hai", "hei", "hao", "hou", "han", "hen", "hang", "heng", "hong",
	"hu", "hua", "huo", "huai", "hui", "huan", "hun", "huang",
	// j
	"ji", "jia", "jie", "jiao", "jiu", "jian", "jin", "jiang", "jing", "jiong",
	"ju", "jue", "juan", "jun",
	// q
	"qi", "qia", "qie", "qiao", "qiu", "qian", "qin", "qiang", "qing", "qiong",
	"qu", "que", "quan", "qun",
	// x
	"xi", "xia", "xie", "xiao", "xiu", "xian", "xin", "xiang", "xing", "xiong",
	"xu", "xue", "xuan", "xun",
	// zh
	"zha", "zhe", "zhi", "zhai", "zhei", "zhao", "zhou", "zhan", "zhen",
	"zhang", "zheng", "zhong",
	"zhu", "zhua", "zhuo", "zhuai", "zhui", "zhuan", "zhun", "zhuang",
	// ch
	"cha", "che", "chi", "chai", "chao", "chou", "chan", "chen",
	"chang", "cheng", "chong",
	"chu", "chua", "chuo", "chuai", "chui", "chuan", "chun", "chuang",
	// sh
	"sha", "she", "shi", "shai", "shei", "shao", "shou", "shan", "shen",
	"shang", "sheng",
	"shu", "shua", "shuo", "shuai", "shui", "shuan", "shun", "shuang",
	// r
	"re", "ri", "rao", "rou", "ran", "ren", "rang", "reng", "rong",
	"ru", "rua", "ruo", "rui", "ruan", "run",
	// z
	"za", "ze", "zi", "zai", "zei", "zao", "zou", "zan", "zen", "zang", "zeng", "zong",
	"zu", "zuo", "zui", "zuan", "zun",
	// c
	"ca", "ce", "ci", "cai", "cao", "cou", "can", "cen", "cang", "ceng", "cong",
	"cu", "cuo", "cui", "cuan", "cun",
	// s
	"sa", "se", "si", "sai", "sao", "sou", "san", "sen", "sang", "seng", "song",
	"su", "suo", "sui", "suan", "sun",
}

// Table is the set of valid toneless pinyin syllables. Membership is
// exact-string over lowercase spellings; it is built once and never
// mutated afterwards.
type Table struct {
	set    map[string]struct{}
	maxLen int
}

// NewTable builds the syllable set from the static inventory.
func NewTable() *Table {
	t := &Table{set: make(map[string]struct{}, len(syllables))}
	for _, s := range syllables {
		t.set[s] = struct{}{}
		if n := len([]rune(s)); n > t.maxLen {
			t.maxLen = n
		}
	}
	return t
}

// Contains reports whether s is a valid toneless syllable spelling.
func (t *Table) Contains(s string) bool {
	_, ok := t.set[s]
	return ok
}

// MaxLen returns the rune length of the longest syllable in the table.
func (t *Table) MaxLen() int {
	return t.maxLen
}

// Len returns the number of syllables in the table.
func (t *Table) Len() int {
	return len(t.set)
}
