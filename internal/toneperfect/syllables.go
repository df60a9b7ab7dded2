package toneperfect

import (
	"regexp"
	"strings"
)

// rawSyllableInventory is the standard pinyin syllable chart, with the
// initial-group headings still in place. Headings are stripped and each
// syllable normalized (ü becomes v, to match Tone Perfect filenames)
// when the inventory is loaded.
const rawSyllableInventory = `
A
a
ai
an
ang
ao
B
ba
bai
ban
bang
bao
bei
ben
beng
bi
bian
biao
bie
bin
bing
bo
bu
C
ca
cai
can
cang
cao
ce
cen
ceng
ci
cong
cou
cu
cuan
cui
cun
cuo
CH
cha
chai
chan
chang
chao
che
chen
cheng
chi
chong
chou
chu
chua
chuai
chuan
chuang
chui
chun
chuo
D
da
dai
dan
dang
dao
de
deng
di
dia
dian
diao
die
ding
diu
dong
dou
du
duan
dui
dun
duo
E
e
ei
en
eng
er
F
fa
fan
fang
fei
fen
feng
fo
fou
fu
G
ga
gai
gan
gang
gao
ge
gei
gen
geng
gong
gou
gu
gua
guai
guan
guang
gui
gun
guo
H
ha
hai
han
hang
hao
he
hei
hen
heng
hong
hou
hu
hua
huai
huan
huang
hui
hun
huo
J
ji
jia
jian
jiang
jiao
jie
jin
jing
jiong
jiu
ju
juan
jue
jun
K
ka
kai
kan
kang
kao
ke
ken
keng
kong
kou
ku
kua
kuai
kuan
kuang
kui
kun
kuo
L
la
lai
lan
lang
lao
le
lei
leng
li
lia
lian
liang
liao
lie
lin
ling
liu
long
lou
lu
luan
lun
luo
lü
lüe
M
ma
mai
man
mang
mao
me
mei
men
meng
mi
mian
miao
mie
min
ming
miu
mo
mou
mu
N
na
nai
nan
nang
nao
ne
nei
nen
neng
ni
nian
niang
niao
nie
nin
ning
niu
nong
nu
nuan
nun
nuo
nü
nüe
O
o
ou
P
pa
pai
pan
pang
pao
pei
pen
peng
pi
pian
piao
pie
pin
ping
po
pou
pu
Q
qi
qia
qian
qiang
qiao
qie
qin
qing
qiong
qiu
qu
quan
que
qun
R
ran
rang
rao
re
ren
reng
ri
rong
rou
ru
ruan
rui
run
ruo
S
sa
sai
san
sang
sao
se
sen
seng
si
song
sou
su
suan
sui
sun
suo
SH
sha
shai
shan
shang
shao
she
shei
shen
sheng
shi
shou
shu
shua
shuai
shuan
shuang
shui
shun
shuo
T
ta
tai
tan
tang
tao
te
teng
ti
tian
tiao
tie
ting
tong
tou
tu
tuan
tui
tun
tuo
W
wa
wai
wan
wang
wei
wen
weng
wo
wu
X
xi
xia
xian
xiang
xiao
xie
xin
xing
xiong
xiu
xu
xuan
xue
xun
Y
ya
yan
yang
yao
ye
yi
yin
ying
yo
yong
you
yu
yuan
yue
yun
Z
za
zai
zan
zang
zao
ze
zei
zen
zeng
zi
zong
zou
zu
zuan
zui
zun
zuo
ZH
zha
zhai
zhan
zhang
zhao
zhe
zhei
zhen
zheng
zhi
zhong
zhou
zhu
zhua
zhuai
zhuan
zhuang
zhui
zhun
zhuo
`

var (
	parentheticalPattern = regexp.MustCompile(`\s*\(.*?\)`)
	nonLetterPattern     = regexp.MustCompile(`[^a-z]`)
)

// normalizeSyllable turns one inventory line into a canonical syllable.
// Heading lines (all-uppercase initial groups) and empty lines yield "".
func normalizeSyllable(line string) string {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || trimmed == strings.ToUpper(trimmed) && trimmed != strings.ToLower(trimmed) {
		return ""
	}
	trimmed = parentheticalPattern.ReplaceAllString(trimmed, "")
	trimmed = strings.ReplaceAll(trimmed, "ü", "v")
	trimmed = strings.ReplaceAll(trimmed, "Ü", "v")
	trimmed = strings.ToLower(trimmed)
	return nonLetterPattern.ReplaceAllString(trimmed, "")
}

// SyllableInventory returns the normalized, deduplicated syllable list
// in chart order.
func SyllableInventory() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, line := range strings.Split(rawSyllableInventory, "\n") {
		syllable := normalizeSyllable(line)
		if syllable == "" {
			continue
		}
		if _, ok := seen[syllable]; ok {
			continue
		}
		seen[syllable] = struct{}{}
		out = append(out, syllable)
	}
	return out
}
