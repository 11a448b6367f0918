package rating

// Rate tables for the three service tiers. Rows follow WeightBracket.Index
// (four sub-pound tiers, then whole pounds 1 through 70); columns are zones
// 1 through 9.

// economyRates holds cent prices per weight bracket row and zone column.
var economyRates = rateTable{
	{465, 505, 545, 585, 625, 665, 705, 745, 785}, // 4 oz
	{520, 566, 612, 658, 704, 750, 796, 842, 888}, // 8 oz
	{575, 627, 679, 731, 783, 835, 887, 939, 991}, // 12 oz
	{640, 698, 756, 814, 872, 930, 988, 1046, 1104}, // 15.999 oz
	{900, 964, 1028, 1092, 1156, 1220, 1284, 1348, 1412}, // 1 lb
	{985, 1055, 1125, 1195, 1265, 1335, 1405, 1475, 1545}, // 2 lb
	{1070, 1146, 1222, 1298, 1374, 1450, 1526, 1602, 1678}, // 3 lb
	{1155, 1237, 1319, 1401, 1483, 1565, 1647, 1729, 1811}, // 4 lb
	{1240, 1328, 1416, 1504, 1592, 1680, 1768, 1856, 1944}, // 5 lb
	{1325, 1419, 1513, 1607, 1701, 1795, 1889, 1983, 2077}, // 6 lb
	{1410, 1510, 1610, 1710, 1810, 1910, 2010, 2110, 2210}, // 7 lb
	{1495, 1601, 1707, 1813, 1919, 2025, 2131, 2237, 2343}, // 8 lb
	{1580, 1692, 1804, 1916, 2028, 2140, 2252, 2364, 2476}, // 9 lb
	{1665, 1783, 1901, 2019, 2137, 2255, 2373, 2491, 2609}, // 10 lb
	{1750, 1874, 1998, 2122, 2246, 2370, 2494, 2618, 2742}, // 11 lb
	{1835, 1965, 2095, 2225, 2355, 2485, 2615, 2745, 2875}, // 12 lb
	{1920, 2056, 2192, 2328, 2464, 2600, 2736, 2872, 3008}, // 13 lb
	{2005, 2147, 2289, 2431, 2573, 2715, 2857, 2999, 3141}, // 14 lb
	{2090, 2238, 2386, 2534, 2682, 2830, 2978, 3126, 3274}, // 15 lb
	{2175, 2329, 2483, 2637, 2791, 2945, 3099, 3253, 3407}, // 16 lb
	{2260, 2420, 2580, 2740, 2900, 3060, 3220, 3380, 3540}, // 17 lb
	{2345, 2511, 2677, 2843, 3009, 3175, 3341, 3507, 3673}, // 18 lb
	{2430, 2602, 2774, 2946, 3118, 3290, 3462, 3634, 3806}, // 19 lb
	{2515, 2693, 2871, 3049, 3227, 3405, 3583, 3761, 3939}, // 20 lb
	{2600, 2784, 2968, 3152, 3336, 3520, 3704, 3888, 4072}, // 21 lb
	{2685, 2875, 3065, 3255, 3445, 3635, 3825, 4015, 4205}, // 22 lb
	{2770, 2966, 3162, 3358, 3554, 3750, 3946, 4142, 4338}, // 23 lb
	{2855, 3057, 3259, 3461, 3663, 3865, 4067, 4269, 4471}, // 24 lb
	{2940, 3148, 3356, 3564, 3772, 3980, 4188, 4396, 4604}, // 25 lb
	{3025, 3239, 3453, 3667, 3881, 4095, 4309, 4523, 4737}, // 26 lb
	{3110, 3330, 3550, 3770, 3990, 4210, 4430, 4650, 4870}, // 27 lb
	{3195, 3421, 3647, 3873, 4099, 4325, 4551, 4777, 5003}, // 28 lb
	{3280, 3512, 3744, 3976, 4208, 4440, 4672, 4904, 5136}, // 29 lb
	{3365, 3603, 3841, 4079, 4317, 4555, 4793, 5031, 5269}, // 30 lb
	{3450, 3694, 3938, 4182, 4426, 4670, 4914, 5158, 5402}, // 31 lb
	{3535, 3785, 4035, 4285, 4535, 4785, 5035, 5285, 5535}, // 32 lb
	{3620, 3876, 4132, 4388, 4644, 4900, 5156, 5412, 5668}, // 33 lb
	{3705, 3967, 4229, 4491, 4753, 5015, 5277, 5539, 5801}, // 34 lb
	{3790, 4058, 4326, 4594, 4862, 5130, 5398, 5666, 5934}, // 35 lb
	{3875, 4149, 4423, 4697, 4971, 5245, 5519, 5793, 6067}, // 36 lb
	{3960, 4240, 4520, 4800, 5080, 5360, 5640, 5920, 6200}, // 37 lb
	{4045, 4331, 4617, 4903, 5189, 5475, 5761, 6047, 6333}, // 38 lb
	{4130, 4422, 4714, 5006, 5298, 5590, 5882, 6174, 6466}, // 39 lb
	{4215, 4513, 4811, 5109, 5407, 5705, 6003, 6301, 6599}, // 40 lb
	{4300, 4604, 4908, 5212, 5516, 5820, 6124, 6428, 6732}, // 41 lb
	{4385, 4695, 5005, 5315, 5625, 5935, 6245, 6555, 6865}, // 42 lb
	{4470, 4786, 5102, 5418, 5734, 6050, 6366, 6682, 6998}, // 43 lb
	{4555, 4877, 5199, 5521, 5843, 6165, 6487, 6809, 7131}, // 44 lb
	{4640, 4968, 5296, 5624, 5952, 6280, 6608, 6936, 7264}, // 45 lb
	{4725, 5059, 5393, 5727, 6061, 6395, 6729, 7063, 7397}, // 46 lb
	{4810, 5150, 5490, 5830, 6170, 6510, 6850, 7190, 7530}, // 47 lb
	{4895, 5241, 5587, 5933, 6279, 6625, 6971, 7317, 7663}, // 48 lb
	{4980, 5332, 5684, 6036, 6388, 6740, 7092, 7444, 7796}, // 49 lb
	{5065, 5423, 5781, 6139, 6497, 6855, 7213, 7571, 7929}, // 50 lb
	{5150, 5514, 5878, 6242, 6606, 6970, 7334, 7698, 8062}, // 51 lb
	{5235, 5605, 5975, 6345, 6715, 7085, 7455, 7825, 8195}, // 52 lb
	{5320, 5696, 6072, 6448, 6824, 7200, 7576, 7952, 8328}, // 53 lb
	{5405, 5787, 6169, 6551, 6933, 7315, 7697, 8079, 8461}, // 54 lb
	{5490, 5878, 6266, 6654, 7042, 7430, 7818, 8206, 8594}, // 55 lb
	{5575, 5969, 6363, 6757, 7151, 7545, 7939, 8333, 8727}, // 56 lb
	{5660, 6060, 6460, 6860, 7260, 7660, 8060, 8460, 8860}, // 57 lb
	{5745, 6151, 6557, 6963, 7369, 7775, 8181, 8587, 8993}, // 58 lb
	{5830, 6242, 6654, 7066, 7478, 7890, 8302, 8714, 9126}, // 59 lb
	{5915, 6333, 6751, 7169, 7587, 8005, 8423, 8841, 9259}, // 60 lb
	{6000, 6424, 6848, 7272, 7696, 8120, 8544, 8968, 9392}, // 61 lb
	{6085, 6515, 6945, 7375, 7805, 8235, 8665, 9095, 9525}, // 62 lb
	{6170, 6606, 7042, 7478, 7914, 8350, 8786, 9222, 9658}, // 63 lb
	{6255, 6697, 7139, 7581, 8023, 8465, 8907, 9349, 9791}, // 64 lb
	{6340, 6788, 7236, 7684, 8132, 8580, 9028, 9476, 9924}, // 65 lb
	{6425, 6879, 7333, 7787, 8241, 8695, 9149, 9603, 10057}, // 66 lb
	{6510, 6970, 7430, 7890, 8350, 8810, 9270, 9730, 10190}, // 67 lb
	{6595, 7061, 7527, 7993, 8459, 8925, 9391, 9857, 10323}, // 68 lb
	{6680, 7152, 7624, 8096, 8568, 9040, 9512, 9984, 10456}, // 69 lb
	{6765, 7243, 7721, 8199, 8677, 9155, 9633, 10111, 10589}, // 70 lb
}

// standardRates holds cent prices per weight bracket row and zone column.
var standardRates = rateTable{
	{635, 681, 727, 773, 819, 865, 911, 957, 1003}, // 4 oz
	{698, 751, 804, 857, 910, 962, 1015, 1068, 1121}, // 8 oz
	{761, 821, 881, 941, 1000, 1060, 1120, 1180, 1240}, // 12 oz
	{836, 903, 969, 1036, 1103, 1170, 1236, 1303, 1370}, // 15.999 oz
	{1135, 1209, 1282, 1356, 1429, 1503, 1577, 1650, 1724}, // 1 lb
	{1233, 1313, 1394, 1474, 1555, 1635, 1716, 1796, 1877}, // 2 lb
	{1330, 1418, 1505, 1593, 1680, 1767, 1855, 1942, 2030}, // 3 lb
	{1428, 1523, 1617, 1711, 1805, 1900, 1994, 2088, 2183}, // 4 lb
	{1526, 1627, 1728, 1830, 1931, 2032, 2133, 2234, 2336}, // 5 lb
	{1624, 1732, 1840, 1948, 2056, 2164, 2272, 2380, 2489}, // 6 lb
	{1721, 1836, 1951, 2066, 2182, 2296, 2412, 2526, 2642}, // 7 lb
	{1819, 1941, 2063, 2185, 2307, 2429, 2551, 2673, 2794}, // 8 lb
	{1917, 2046, 2175, 2303, 2432, 2561, 2690, 2819, 2947}, // 9 lb
	{2015, 2150, 2286, 2422, 2558, 2693, 2829, 2965, 3100}, // 10 lb
	{2112, 2255, 2398, 2540, 2683, 2826, 2968, 3111, 3253}, // 11 lb
	{2210, 2360, 2509, 2659, 2808, 2958, 3107, 3257, 3406}, // 12 lb
	{2308, 2464, 2621, 2777, 2934, 3090, 3246, 3403, 3559}, // 13 lb
	{2406, 2569, 2732, 2896, 3059, 3222, 3386, 3549, 3712}, // 14 lb
	{2504, 2674, 2844, 3014, 3184, 3354, 3525, 3695, 3865}, // 15 lb
	{2601, 2778, 2955, 3133, 3310, 3487, 3664, 3841, 4018}, // 16 lb
	{2699, 2883, 3067, 3251, 3435, 3619, 3803, 3987, 4171}, // 17 lb
	{2797, 2988, 3179, 3369, 3560, 3751, 3942, 4133, 4324}, // 18 lb
	{2894, 3092, 3290, 3488, 3686, 3883, 4081, 4279, 4477}, // 19 lb
	{2992, 3197, 3402, 3606, 3811, 4016, 4220, 4425, 4630}, // 20 lb
	{3090, 3302, 3513, 3725, 3936, 4148, 4360, 4571, 4783}, // 21 lb
	{3188, 3406, 3625, 3843, 4062, 4280, 4499, 4717, 4936}, // 22 lb
	{3285, 3511, 3736, 3962, 4187, 4412, 4638, 4863, 5089}, // 23 lb
	{3383, 3616, 3848, 4080, 4312, 4545, 4777, 5009, 5242}, // 24 lb
	{3481, 3720, 3959, 4199, 4438, 4677, 4916, 5155, 5395}, // 25 lb
	{3579, 3825, 4071, 4317, 4563, 4809, 5055, 5301, 5548}, // 26 lb
	{3676, 3929, 4182, 4436, 4688, 4942, 5194, 5448, 5700}, // 27 lb
	{3774, 4034, 4294, 4554, 4814, 5074, 5334, 5594, 5853}, // 28 lb
	{3872, 4139, 4406, 4672, 4939, 5206, 5473, 5740, 6006}, // 29 lb
	{3970, 4243, 4517, 4791, 5065, 5338, 5612, 5886, 6159}, // 30 lb
	{4067, 4348, 4629, 4909, 5190, 5470, 5751, 6032, 6312}, // 31 lb
	{4165, 4453, 4740, 5028, 5315, 5603, 5890, 6178, 6465}, // 32 lb
	{4263, 4557, 4852, 5146, 5441, 5735, 6029, 6324, 6618}, // 33 lb
	{4361, 4662, 4963, 5265, 5566, 5867, 6169, 6470, 6771}, // 34 lb
	{4458, 4767, 5075, 5383, 5691, 5999, 6308, 6616, 6924}, // 35 lb
	{4556, 4871, 5186, 5502, 5817, 6132, 6447, 6762, 7077}, // 36 lb
	{4654, 4976, 5298, 5620, 5942, 6264, 6586, 6908, 7230}, // 37 lb
	{4752, 5081, 5410, 5738, 6067, 6396, 6725, 7054, 7383}, // 38 lb
	{4850, 5185, 5521, 5857, 6193, 6528, 6864, 7200, 7536}, // 39 lb
	{4947, 5290, 5633, 5975, 6318, 6661, 7003, 7346, 7689}, // 40 lb
	{5045, 5395, 5744, 6094, 6443, 6793, 7143, 7492, 7842}, // 41 lb
	{5143, 5499, 5856, 6212, 6569, 6925, 7282, 7638, 7995}, // 42 lb
	{5240, 5604, 5967, 6331, 6694, 7057, 7421, 7784, 8148}, // 43 lb
	{5338, 5709, 6079, 6449, 6819, 7190, 7560, 7930, 8301}, // 44 lb
	{5436, 5813, 6190, 6568, 6945, 7322, 7699, 8076, 8454}, // 45 lb
	{5534, 5918, 6302, 6686, 7070, 7454, 7838, 8222, 8607}, // 46 lb
	{5632, 6022, 6413, 6804, 7195, 7586, 7977, 8368, 8760}, // 47 lb
	{5729, 6127, 6525, 6923, 7321, 7719, 8117, 8515, 8912}, // 48 lb
	{5827, 6232, 6637, 7041, 7446, 7851, 8256, 8661, 9065}, // 49 lb
	{5925, 6336, 6748, 7160, 7572, 7983, 8395, 8807, 9218}, // 50 lb
	{6022, 6441, 6860, 7278, 7697, 8115, 8534, 8953, 9371}, // 51 lb
	{6120, 6546, 6971, 7397, 7822, 8248, 8673, 9099, 9524}, // 52 lb
	{6218, 6650, 7083, 7515, 7948, 8380, 8812, 9245, 9677}, // 53 lb
	{6316, 6755, 7194, 7634, 8073, 8512, 8952, 9391, 9830}, // 54 lb
	{6413, 6860, 7306, 7752, 8198, 8644, 9091, 9537, 9983}, // 55 lb
	{6511, 6964, 7417, 7871, 8324, 8777, 9230, 9683, 10136}, // 56 lb
	{6609, 7069, 7529, 7989, 8449, 8909, 9369, 9829, 10289}, // 57 lb
	{6707, 7174, 7641, 8107, 8574, 9041, 9508, 9975, 10442}, // 58 lb
	{6804, 7278, 7752, 8226, 8700, 9174, 9647, 10121, 10595}, // 59 lb
	{6902, 7383, 7864, 8344, 8825, 9306, 9786, 10267, 10748}, // 60 lb
	{7000, 7488, 7975, 8463, 8950, 9438, 9926, 10413, 10901}, // 61 lb
	{7098, 7592, 8087, 8581, 9076, 9570, 10065, 10559, 11054}, // 62 lb
	{7195, 7697, 8198, 8700, 9201, 9702, 10204, 10705, 11207}, // 63 lb
	{7293, 7802, 8310, 8818, 9326, 9835, 10343, 10851, 11360}, // 64 lb
	{7391, 7906, 8421, 8937, 9452, 9967, 10482, 10997, 11513}, // 65 lb
	{7489, 8011, 8533, 9055, 9577, 10099, 10621, 11143, 11666}, // 66 lb
	{7586, 8115, 8644, 9174, 9702, 10232, 10760, 11290, 11818}, // 67 lb
	{7684, 8220, 8756, 9292, 9828, 10364, 10900, 11436, 11971}, // 68 lb
	{7782, 8325, 8868, 9410, 9953, 10496, 11039, 11582, 12124}, // 69 lb
	{7880, 8429, 8979, 9529, 10079, 10628, 11178, 11728, 12277}, // 70 lb
}

// expeditedRates holds cent prices per weight bracket row and zone column.
var expeditedRates = rateTable{
	{1302, 1414, 1526, 1638, 1750, 1862, 1974, 2086, 2198}, // 4 oz
	{1456, 1585, 1714, 1842, 1971, 2100, 2229, 2358, 2486}, // 8 oz
	{1610, 1756, 1901, 2047, 2192, 2338, 2484, 2629, 2775}, // 12 oz
	{1792, 1954, 2117, 2279, 2442, 2604, 2766, 2929, 3091}, // 15.999 oz
	{2520, 2699, 2878, 3058, 3237, 3416, 3595, 3774, 3954}, // 1 lb
	{2758, 2954, 3150, 3346, 3542, 3738, 3934, 4130, 4326}, // 2 lb
	{2996, 3209, 3422, 3634, 3847, 4060, 4273, 4486, 4698}, // 3 lb
	{3234, 3464, 3693, 3923, 4152, 4382, 4612, 4841, 5071}, // 4 lb
	{3472, 3718, 3965, 4211, 4458, 4704, 4950, 5197, 5443}, // 5 lb
	{3710, 3973, 4236, 4500, 4763, 5026, 5289, 5552, 5816}, // 6 lb
	{3948, 4228, 4508, 4788, 5068, 5348, 5628, 5908, 6188}, // 7 lb
	{4186, 4483, 4780, 5076, 5373, 5670, 5967, 6264, 6560}, // 8 lb
	{4424, 4738, 5051, 5365, 5678, 5992, 6306, 6619, 6933}, // 9 lb
	{4662, 4992, 5323, 5653, 5984, 6314, 6644, 6975, 7305}, // 10 lb
	{4900, 5247, 5594, 5942, 6289, 6636, 6983, 7330, 7678}, // 11 lb
	{5138, 5502, 5866, 6230, 6594, 6958, 7322, 7686, 8050}, // 12 lb
	{5376, 5757, 6138, 6518, 6899, 7280, 7661, 8042, 8422}, // 13 lb
	{5614, 6012, 6409, 6807, 7204, 7602, 8000, 8397, 8795}, // 14 lb
	{5852, 6266, 6681, 7095, 7510, 7924, 8338, 8753, 9167}, // 15 lb
	{6090, 6521, 6952, 7384, 7815, 8246, 8677, 9108, 9540}, // 16 lb
	{6328, 6776, 7224, 7672, 8120, 8568, 9016, 9464, 9912}, // 17 lb
	{6566, 7031, 7496, 7960, 8425, 8890, 9355, 9820, 10284}, // 18 lb
	{6804, 7286, 7767, 8249, 8730, 9212, 9694, 10175, 10657}, // 19 lb
	{7042, 7540, 8039, 8537, 9036, 9534, 10032, 10531, 11029}, // 20 lb
	{7280, 7795, 8310, 8826, 9341, 9856, 10371, 10886, 11402}, // 21 lb
	{7518, 8050, 8582, 9114, 9646, 10178, 10710, 11242, 11774}, // 22 lb
	{7756, 8305, 8854, 9402, 9951, 10500, 11049, 11598, 12146}, // 23 lb
	{7994, 8560, 9125, 9691, 10256, 10822, 11388, 11953, 12519}, // 24 lb
	{8232, 8814, 9397, 9979, 10562, 11144, 11726, 12309, 12891}, // 25 lb
	{8470, 9069, 9668, 10268, 10867, 11466, 12065, 12664, 13264}, // 26 lb
	{8708, 9324, 9940, 10556, 11172, 11788, 12404, 13020, 13636}, // 27 lb
	{8946, 9579, 10212, 10844, 11477, 12110, 12743, 13376, 14008}, // 28 lb
	{9184, 9834, 10483, 11133, 11782, 12432, 13082, 13731, 14381}, // 29 lb
	{9422, 10088, 10755, 11421, 12088, 12754, 13420, 14087, 14753}, // 30 lb
	{9660, 10343, 11026, 11710, 12393, 13076, 13759, 14442, 15126}, // 31 lb
	{9898, 10598, 11298, 11998, 12698, 13398, 14098, 14798, 15498}, // 32 lb
	{10136, 10853, 11570, 12286, 13003, 13720, 14437, 15154, 15870}, // 33 lb
	{10374, 11108, 11841, 12575, 13308, 14042, 14776, 15509, 16243}, // 34 lb
	{10612, 11362, 12113, 12863, 13614, 14364, 15114, 15865, 16615}, // 35 lb
	{10850, 11617, 12384, 13152, 13919, 14686, 15453, 16220, 16988}, // 36 lb
	{11088, 11872, 12656, 13440, 14224, 15008, 15792, 16576, 17360}, // 37 lb
	{11326, 12127, 12928, 13728, 14529, 15330, 16131, 16932, 17732}, // 38 lb
	{11564, 12382, 13199, 14017, 14834, 15652, 16470, 17287, 18105}, // 39 lb
	{11802, 12636, 13471, 14305, 15140, 15974, 16808, 17643, 18477}, // 40 lb
	{12040, 12891, 13742, 14594, 15445, 16296, 17147, 17998, 18850}, // 41 lb
	{12278, 13146, 14014, 14882, 15750, 16618, 17486, 18354, 19222}, // 42 lb
	{12516, 13401, 14286, 15170, 16055, 16940, 17825, 18710, 19594}, // 43 lb
	{12754, 13656, 14557, 15459, 16360, 17262, 18164, 19065, 19967}, // 44 lb
	{12992, 13910, 14829, 15747, 16666, 17584, 18502, 19421, 20339}, // 45 lb
	{13230, 14165, 15100, 16036, 16971, 17906, 18841, 19776, 20712}, // 46 lb
	{13468, 14420, 15372, 16324, 17276, 18228, 19180, 20132, 21084}, // 47 lb
	{13706, 14675, 15644, 16612, 17581, 18550, 19519, 20488, 21456}, // 48 lb
	{13944, 14930, 15915, 16901, 17886, 18872, 19858, 20843, 21829}, // 49 lb
	{14182, 15184, 16187, 17189, 18192, 19194, 20196, 21199, 22201}, // 50 lb
	{14420, 15439, 16458, 17478, 18497, 19516, 20535, 21554, 22574}, // 51 lb
	{14658, 15694, 16730, 17766, 18802, 19838, 20874, 21910, 22946}, // 52 lb
	{14896, 15949, 17002, 18054, 19107, 20160, 21213, 22266, 23318}, // 53 lb
	{15134, 16204, 17273, 18343, 19412, 20482, 21552, 22621, 23691}, // 54 lb
	{15372, 16458, 17545, 18631, 19718, 20804, 21890, 22977, 24063}, // 55 lb
	{15610, 16713, 17816, 18920, 20023, 21126, 22229, 23332, 24436}, // 56 lb
	{15848, 16968, 18088, 19208, 20328, 21448, 22568, 23688, 24808}, // 57 lb
	{16086, 17223, 18360, 19496, 20633, 21770, 22907, 24044, 25180}, // 58 lb
	{16324, 17478, 18631, 19785, 20938, 22092, 23246, 24399, 25553}, // 59 lb
	{16562, 17732, 18903, 20073, 21244, 22414, 23584, 24755, 25925}, // 60 lb
	{16800, 17987, 19174, 20362, 21549, 22736, 23923, 25110, 26298}, // 61 lb
	{17038, 18242, 19446, 20650, 21854, 23058, 24262, 25466, 26670}, // 62 lb
	{17276, 18497, 19718, 20938, 22159, 23380, 24601, 25822, 27042}, // 63 lb
	{17514, 18752, 19989, 21227, 22464, 23702, 24940, 26177, 27415}, // 64 lb
	{17752, 19006, 20261, 21515, 22770, 24024, 25278, 26533, 27787}, // 65 lb
	{17990, 19261, 20532, 21804, 23075, 24346, 25617, 26888, 28160}, // 66 lb
	{18228, 19516, 20804, 22092, 23380, 24668, 25956, 27244, 28532}, // 67 lb
	{18466, 19771, 21076, 22380, 23685, 24990, 26295, 27600, 28904}, // 68 lb
	{18704, 20026, 21347, 22669, 23990, 25312, 26634, 27955, 29277}, // 69 lb
	{18942, 20280, 21619, 22957, 24296, 25634, 26972, 28311, 29649}, // 70 lb
}
