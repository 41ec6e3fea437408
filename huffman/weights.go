package huffman

// Weights holds one frequency weight per legal-move rank 0..255, used to
// build the fixed code book in book.go. The 256 raw values are the
// Lichess compression weights from the reference frequency table
// (attributed there to lichess-org/compression's Huffman.java), sorted
// descending and then folded as value*1000 + (255-i) + 100000: the rank
// term in the low three decimal digits makes every weight distinct (the
// uniqueness invariant a deterministic Huffman construction requires --
// the raw table is not monotonic and has many duplicate entries, in
// particular a long run of weight-zero "never observed in the 10M-game
// sample" tail ranks), and the uniform floor term keeps the tail weights
// from collapsing toward zero, which bounds the depth of the Huffman
// tree: with this table the longest code is 24 bits, against the 32-bit
// ceiling on code length. The transform preserves the
// relative order of every raw weight (ties broken by ascending original
// rank). See DESIGN.md for the worked derivation.
var Weights = [256]uint64{
	225884032255, 134956226254, 89041369253, 69386338252, 57040890251, 44974659250, 36547255249, 31625020248,
	28432872247, 26540593246, 24484973245, 23535372244, 23058134243, 20482557242, 20450272241, 18316157240,
	17214933239, 16964861238, 16530128237, 15369610236, 14275814235, 14178540234, 13353406233, 13102692232,
	12829702231, 11932747230, 10608757229, 10142559228, 8294694227, 7337590226, 6337844225, 5380817224,
	4560656223, 3913413222, 3038867221, 2480614220, 1951126219, 1521551218, 1183352217, 938808216,
	673439215, 513253214, 377399213, 277096212, 199782211, 144702210, 103413209, 73146208,
	52439207, 36879206, 26441205, 18819204, 13325203, 9492202, 7045201, 4993200,
	3798199, 2863198, 2214197, 1731196, 1480195, 1190194, 987193, 815192,
	690191, 649190, 577189, 488188, 451187, 419186, 362185, 336184,
	310183, 300182, 253181, 221180, 221179, 217178, 215177, 195176,
	175175, 167174, 155173, 155172, 150171, 133170, 133169, 132168,
	130167, 129166, 128165, 127164, 121163, 115162, 112161, 112160,
	110159, 109158, 108157, 107156, 105155, 105154, 105153, 104152,
	102151, 102150, 101149, 101148, 101147, 101146, 101145, 101144,
	100143, 100142, 100141, 100140, 100139, 100138, 100137, 100136,
	100135, 100134, 100133, 100132, 100131, 100130, 100129, 100128,
	100127, 100126, 100125, 100124, 100123, 100122, 100121, 100120,
	100119, 100118, 100117, 100116, 100115, 100114, 100113, 100112,
	100111, 100110, 100109, 100108, 100107, 100106, 100105, 100104,
	100103, 100102, 100101, 100100, 100099, 100098, 100097, 100096,
	100095, 100094, 100093, 100092, 100091, 100090, 100089, 100088,
	100087, 100086, 100085, 100084, 100083, 100082, 100081, 100080,
	100079, 100078, 100077, 100076, 100075, 100074, 100073, 100072,
	100071, 100070, 100069, 100068, 100067, 100066, 100065, 100064,
	100063, 100062, 100061, 100060, 100059, 100058, 100057, 100056,
	100055, 100054, 100053, 100052, 100051, 100050, 100049, 100048,
	100047, 100046, 100045, 100044, 100043, 100042, 100041, 100040,
	100039, 100038, 100037, 100036, 100035, 100034, 100033, 100032,
	100031, 100030, 100029, 100028, 100027, 100026, 100025, 100024,
	100023, 100022, 100021, 100020, 100019, 100018, 100017, 100016,
	100015, 100014, 100013, 100012, 100011, 100010, 100009, 100008,
	100007, 100006, 100005, 100004, 100003, 100002, 100001, 100000,
}
